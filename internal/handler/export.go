package handler

import (
	"bytes"
	"context"

	"github.com/pkordes/tabi-shiori/internal/bridge"
	"github.com/pkordes/tabi-shiori/internal/export"
	"github.com/pkordes/tabi-shiori/internal/handler/gen"
	"github.com/pkordes/tabi-shiori/internal/service"
)

// GetExport handles GET /trip/export?data=&format=.
// It returns the schedule of the trip in the query as a flat table, one row
// per item. format is json (default), csv or yaml.
func (s *Server) GetExport(ctx context.Context, req gen.GetExportRequestObject) (gen.GetExportResponseObject, error) {
	var name string
	if req.Params.Format != nil {
		name = string(*req.Params.Format)
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return gen.GetExport422JSONResponse(validationBody(err)), nil
	}

	trip := bridge.TripFromURL(s.requestLocation(ctx).Href())
	rows := service.ExportSchedule(trip)

	if format == export.JSON {
		return gen.GetExport200JSONResponse{
			Body:    rows,
			Headers: gen.GetExport200ResponseHeaders{ContentDisposition: "inline"},
		}, nil
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, rows); err != nil {
		return nil, err
	}
	if format == export.CSV {
		return gen.GetExport200TextcsvResponse{
			Body:          &buf,
			Headers:       gen.GetExport200ResponseHeaders{ContentDisposition: `attachment; filename="schedule.csv"`},
			ContentLength: int64(buf.Len()),
		}, nil
	}
	return gen.GetExport200ApplicationyamlResponse{
		Body:          &buf,
		Headers:       gen.GetExport200ResponseHeaders{ContentDisposition: "inline"},
		ContentLength: int64(buf.Len()),
	}, nil
}
