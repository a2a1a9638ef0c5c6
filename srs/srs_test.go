package srs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geoprint/errs"
)

// countingLoader wraps a StaticLoader and counts calls.
type countingLoader struct {
	inner *StaticLoader
	calls atomic.Int32
	delay time.Duration
	fail  atomic.Bool
}

func (l *countingLoader) LoadSRS(ctx context.Context, srid int32) (Entry, error) {
	l.calls.Add(1)
	if l.delay > 0 {
		time.Sleep(l.delay)
	}
	if l.fail.Load() {
		return Entry{}, errors.New("connection refused")
	}

	return l.inner.LoadSRS(ctx, srid)
}

func TestEntryName(t *testing.T) {
	require.Equal(t, "EPSG:4326", WGS84.Name())
	require.Equal(t, "EPSG:3857", WebMercator.Name())
	require.Empty(t, Entry{SRID: 900913}.Name())
}

func TestStaticLoader(t *testing.T) {
	custom := Entry{SRID: 2154, AuthName: "EPSG", AuthSRID: 2154}
	l := NewStaticLoader(custom)

	e, err := l.LoadSRS(context.Background(), 4326)
	require.NoError(t, err)
	require.Equal(t, WGS84, e)

	e, err = l.LoadSRS(context.Background(), 2154)
	require.NoError(t, err)
	require.Equal(t, "EPSG:2154", e.Name())

	_, err = l.LoadSRS(context.Background(), 1)
	require.ErrorIs(t, err, errs.ErrUnknownSRID)
}

func TestStaticLoader_OverridesBuiltin(t *testing.T) {
	l := NewStaticLoader(Entry{SRID: 4326, AuthName: "OGC", AuthSRID: 84})

	e, err := l.LoadSRS(context.Background(), 4326)
	require.NoError(t, err)
	require.Equal(t, "OGC:84", e.Name())
}

func TestSQLLoader_NilDB(t *testing.T) {
	_, err := NewSQLLoader(nil).LoadSRS(context.Background(), 4326)
	require.Error(t, err)
}

func TestNewCache_NilLoader(t *testing.T) {
	c, err := NewCache(nil)
	require.ErrorIs(t, err, errs.ErrNilLoader)
	require.Nil(t, c)
}

func TestCache_Get(t *testing.T) {
	loader := &countingLoader{inner: NewStaticLoader()}
	c, err := NewCache(loader)
	require.NoError(t, err)
	require.Equal(t, 0, c.Len())

	for range 3 {
		e, err := c.Get(context.Background(), 4326)
		require.NoError(t, err)
		require.Equal(t, "EPSG:4326", e.Name())
	}

	require.Equal(t, int32(1), loader.calls.Load())
	require.Equal(t, 1, c.Len())
}

func TestCache_UnknownSRID(t *testing.T) {
	loader := &countingLoader{inner: NewStaticLoader()}
	c, err := NewCache(loader)
	require.NoError(t, err)

	_, err = c.Get(context.Background(), 999999)
	require.ErrorIs(t, err, errs.ErrUnknownSRID)
	require.Equal(t, 0, c.Len())
}

func TestCache_FailedLoadNotCached(t *testing.T) {
	loader := &countingLoader{inner: NewStaticLoader()}
	loader.fail.Store(true)

	c, err := NewCache(loader)
	require.NoError(t, err)

	_, err = c.Get(context.Background(), 4326)
	require.Error(t, err)
	require.Equal(t, 0, c.Len())

	loader.fail.Store(false)
	e, err := c.Get(context.Background(), 4326)
	require.NoError(t, err)
	require.Equal(t, WGS84, e)
	require.Equal(t, int32(2), loader.calls.Load())
}

func TestCache_Invalidate(t *testing.T) {
	loader := &countingLoader{inner: NewStaticLoader()}
	c, err := NewCache(loader)
	require.NoError(t, err)

	_, err = c.Get(context.Background(), 4326)
	require.NoError(t, err)
	_, err = c.Get(context.Background(), 3857)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	c.Invalidate(4326)
	c.Invalidate(1) // absent SRID is a no-op
	require.Equal(t, 1, c.Len())

	_, err = c.Get(context.Background(), 4326)
	require.NoError(t, err)
	require.Equal(t, int32(3), loader.calls.Load())

	c.Reset()
	require.Equal(t, 0, c.Len())
}

func TestCache_WithEntries(t *testing.T) {
	loader := &countingLoader{inner: NewStaticLoader()}
	custom := Entry{SRID: 27700, AuthName: "EPSG", AuthSRID: 27700}

	c, err := NewCache(loader, WithEntries(custom), WithLogger(nil))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	e, err := c.Get(context.Background(), 27700)
	require.NoError(t, err)
	require.Equal(t, custom, e)
	require.Equal(t, int32(0), loader.calls.Load())
}

func TestCache_ConcurrentMissesLoadOnce(t *testing.T) {
	loader := &countingLoader{inner: NewStaticLoader(), delay: 50 * time.Millisecond}
	c, err := NewCache(loader)
	require.NoError(t, err)

	const workers = 32
	var wg sync.WaitGroup
	start := make(chan struct{})
	results := make([]Entry, workers)
	failures := make([]error, workers)

	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], failures[i] = c.Get(context.Background(), 3857)
		}(i)
	}
	close(start)
	wg.Wait()

	for i := range workers {
		require.NoError(t, failures[i])
		require.Equal(t, WebMercator, results[i])
	}
	require.Equal(t, int32(1), loader.calls.Load())
}
