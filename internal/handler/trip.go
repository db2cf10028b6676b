package handler

import (
	"context"
	"errors"

	"github.com/pkordes/tabi-shiori/internal/bridge"
	"github.com/pkordes/tabi-shiori/internal/codec"
	"github.com/pkordes/tabi-shiori/internal/domain"
	"github.com/pkordes/tabi-shiori/internal/handler/gen"
	"github.com/pkordes/tabi-shiori/internal/service"
)

// GetTrip handles GET /trip?data=.
// A missing or unreadable data parameter is not an error: the response holds
// the empty trip, the same fallback a browser gets when opening the link.
// restored reports whether the link carried a trip other than the default.
func (s *Server) GetTrip(ctx context.Context, _ gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	b := bridge.New(s.requestLocation(ctx), s.log)
	restored := b.Load()

	resp, err := s.tripResponse(b.Trip(), "")
	if err != nil {
		return nil, err
	}
	resp.Restored = &restored
	return gen.GetTrip200JSONResponse(resp), nil
}

// ApplyOp handles POST /trip/ops?data=.
// The body is a service.Intent; it is applied to the trip in the query and
// the result is written back into the request URL, keeping any other query
// parameters. Rejected input is a no-op; an unknown op or missing payload
// is answered with 422.
func (s *Server) ApplyOp(ctx context.Context, req gen.ApplyOpRequestObject) (gen.ApplyOpResponseObject, error) {
	if req.Body == nil {
		return gen.ApplyOp422JSONResponse(requestBody("request body is required")), nil
	}

	loc := s.requestLocation(ctx)
	b := bridge.New(loc, s.log)
	b.Load()

	next, err := service.Apply(b.Trip(), *req.Body)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ApplyOp422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	b.Apply(func(domain.Trip) domain.Trip { return next })

	resp, err := s.tripResponse(b.Trip(), loc.Href())
	if err != nil {
		return nil, err
	}
	return gen.ApplyOp200JSONResponse(resp), nil
}

// EncodeTrip handles POST /trip/encode.
// The body is the JSON form of a trip and must pass the same shape check as
// a decoded link.
func (s *Server) EncodeTrip(_ context.Context, req gen.EncodeTripRequestObject) (gen.EncodeTripResponseObject, error) {
	if req.Body == nil {
		return gen.EncodeTrip422JSONResponse(requestBody("request body is required")), nil
	}
	trip, err := codec.Unmarshal(*req.Body)
	if err != nil {
		return gen.EncodeTrip422JSONResponse(validationBody(err)), nil
	}

	resp, err := s.tripResponse(trip, "")
	if err != nil {
		return nil, err
	}
	return gen.EncodeTrip200JSONResponse(resp), nil
}

// tripResponse encodes trip into the standard trip response. href, when
// set, is used as the URL; otherwise a fresh share link is built.
func (s *Server) tripResponse(trip domain.Trip, href string) (gen.TripResponse, error) {
	data, err := codec.Encode(trip)
	if err != nil {
		return gen.TripResponse{}, err
	}
	if href == "" {
		href = bridge.ShareURL(s.origin, trip)
	}
	return gen.TripResponse{Trip: trip, Data: data, Url: href}, nil
}
