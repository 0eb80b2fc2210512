package electors

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestSource(t *testing.T, handler http.Handler) *CSVSource {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewCSVSource(SourceConfig{BaseURL: server.URL})
}

func TestFetchYearFirstConvention(t *testing.T) {
	source := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2015_gc-no-of-registered-electors.csv" {
			http.NotFound(w, r)
			return
		}
		// upstream files carry a UTF-8 BOM
		w.Write([]byte("\xef\xbb\xbfYear,No. of Registered Electors\n2015,3693942\n"))
	}))

	counts, err := source.FetchYear(context.Background(), 2015)
	require.NoError(t, err)
	require.Equal(t, map[int]int{2015: 3693942}, counts)
}

func TestFetchYearTriesAlternateName(t *testing.T) {
	var paths []string
	source := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/2016_gc-no-of-registered-electors_en.csv" {
			w.Write([]byte("Year,No. of Registered Electors\n2016,3779085\n"))
			return
		}
		http.NotFound(w, r)
	}))

	counts, err := source.FetchYear(context.Background(), 2016)
	require.NoError(t, err)
	require.Equal(t, map[int]int{2016: 3779085}, counts)
	require.Equal(t, []string{
		"/2016_gc-no-of-registered-electors.csv",
		"/2016_gc-no-of-registered-electors_en.csv",
	}, paths)
}

func TestFetchYearEmptyFileTriesAlternateName(t *testing.T) {
	source := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/2017_gc-no-of-registered-electors.csv" {
			// reachable but holds nothing
			return
		}
		w.Write([]byte("Year,No. of Registered Electors\n2017,3805069\n"))
	}))

	counts, err := source.FetchYear(context.Background(), 2017)
	require.NoError(t, err)
	require.Equal(t, map[int]int{2017: 3805069}, counts)
}

func TestFetchYearUnparsableRowsStillCountAsUsed(t *testing.T) {
	var paths []string
	source := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte("Year,No. of Registered Electors\n"))
	}))

	counts, err := source.FetchYear(context.Background(), 2018)
	require.NoError(t, err)
	require.Empty(t, counts)
	// the header row made the resource non-empty, so the second naming
	// convention is never consulted
	require.Equal(t, []string{"/2018_gc-no-of-registered-electors.csv"}, paths)
}

func TestFetchYearAbsentEverywhere(t *testing.T) {
	source := newTestSource(t, http.NotFoundHandler())

	counts, err := source.FetchYear(context.Background(), 2019)
	require.NoError(t, err)
	require.Empty(t, counts)
}

func TestFetchYearTransportError(t *testing.T) {
	var paths []string
	source := newTestSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		http.Error(w, "upstream outage", http.StatusInternalServerError)
	}))

	_, err := source.FetchYear(context.Background(), 2020)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	// a transport-level failure must not be masked by falling through
	// to the alternate name
	require.Equal(t, []string{"/2020_gc-no-of-registered-electors.csv"}, paths)
}

func TestFetchYearTimeoutConfigured(t *testing.T) {
	source := NewCSVSource(SourceConfig{})
	require.Equal(t, time.Second*10, source.client.GetClient().Timeout)
}
