package electors

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/electors")

type YearCount struct {
	Year     int `json:"year"`
	Electors int `json:"electors"`
}

type Result struct {
	Data   []YearCount `json:"data"`
	Source string      `json:"source"`
	Note   string      `json:"note"`
}

const (
	provenanceSource = "Registration and Electoral Office"
	provenanceNote   = "Data fetched from voterregistration.gov.hk"
)

type Service struct {
	source Source
}

func NewService(source Source) Service {
	return Service{source: source}
}

// GetRegisteredElectors assembles the per-year elector counts for
// geographical constituencies over [startYear, endYear]. It either
// returns a complete sorted dataset or a single error, never both.
func (s Service) GetRegisteredElectors(ctx context.Context, startYear, endYear int) (Result, error) {
	ctx, span := tracer.Start(ctx, "GetRegisteredElectors")
	defer span.End()

	span.SetAttributes(
		attribute.Int("start_year", startYear),
		attribute.Int("end_year", endYear),
	)

	dataset, err := aggregateRange(ctx, s.source, startYear, endYear)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	var data []YearCount
	for year, count := range dataset {
		if year < startYear || year > endYear {
			continue
		}
		data = append(data, YearCount{Year: year, Electors: count})
	}
	slices.SortFunc(data, func(a, b YearCount) int {
		return a.Year - b.Year
	})

	if len(data) == 0 {
		span.RecordError(ErrNoData)
		span.SetStatus(codes.Error, ErrNoData.Error())
		return Result{}, ErrNoData
	}

	return Result{
		Data:   data,
		Source: provenanceSource,
		Note:   provenanceNote,
	}, nil
}
