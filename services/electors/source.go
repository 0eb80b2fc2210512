package electors

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hkelection-backend/lib/csvutil"
	"hkelection-backend/lib/restyutil"

	"github.com/go-resty/resty/v2"
)

// Source retrieves the year-to-elector-count mapping published for a
// single calendar year. An empty mapping is not an error, it means the
// year's resource was reachable but held no usable rows.
type Source interface {
	FetchYear(ctx context.Context, year int) (map[int]int, error)
}

const DefaultBaseURL = "https://www.voterregistration.gov.hk/eng/psi/csv"

const fetchTimeout = time.Second * 10

type SourceConfig struct {
	BaseURL string `json:"base_url"`
}

// CSVSource fetches per-year CSV files from the Registration and
// Electoral Office's public statistics site.
type CSVSource struct {
	client  *resty.Client
	baseURL string
}

func NewCSVSource(cfg SourceConfig) *CSVSource {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &CSVSource{
		client:  resty.New().SetTimeout(fetchTimeout),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *CSVSource) SetInstrumentOutput(out restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(s.client, tracer, out)
}

// the publisher has used two naming conventions for the same resource
// over the years, in this order of preference
func (s *CSVSource) yearURLs(year int) [2]string {
	return [2]string{
		fmt.Sprintf("%s/%d_gc-no-of-registered-electors.csv", s.baseURL, year),
		fmt.Sprintf("%s/%d_gc-no-of-registered-electors_en.csv", s.baseURL, year),
	}
}

// FetchYear tries each naming convention in order and parses the first
// one that yields any rows, even if none of those rows survive parsing.
// A 404 or an empty file means "absent under this name" and the next
// convention is tried; any other failure propagates immediately without
// trying the alternate name.
func (s *CSVSource) FetchYear(ctx context.Context, year int) (map[int]int, error) {
	for _, url := range s.yearURLs(year) {
		res, err := s.client.R().SetContext(ctx).Get(url)
		if err != nil {
			return nil, &TransportError{URL: url, Err: err}
		}
		if res.StatusCode() == http.StatusNotFound {
			continue
		}
		if !res.IsSuccess() {
			return nil, &TransportError{URL: url, Err: fmt.Errorf("status %s", res.Status())}
		}
		rows := csvutil.ReadRows(res.Body())
		if len(rows) == 0 {
			continue
		}
		return parseRows(rows), nil
	}
	return map[int]int{}, nil
}
