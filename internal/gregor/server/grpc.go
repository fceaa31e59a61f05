package server

import (
	"context"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"github.com/msto63/eiya/internal/gregor/service"
	"google.golang.org/protobuf/types/known/structpb"
)

// Ensure Server implements GregorServer
var _ GregorServer = (*Server)(nil)

// Format implements GregorServer.Format
//
//	in:  time, pattern?, locale?
//	out: text
func (s *Server) Format(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := newRequest("gregor.Format", in)
	t := req.instant("time")
	pattern, locale := req.str("pattern"), req.str("locale")
	if req.err != nil {
		return nil, req.err
	}

	text, err := s.service.Format(ctx, t, pattern, locale)
	if err != nil {
		return nil, err
	}
	return newResponse(map[string]interface{}{"text": text})
}

// Parse implements GregorServer.Parse
//
//	in:  text, pattern?, locale?
//	out: time
func (s *Server) Parse(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := newRequest("gregor.Parse", in)
	text := req.requiredStr("text")
	pattern, locale := req.str("pattern"), req.str("locale")
	if req.err != nil {
		return nil, req.err
	}

	t, err := s.service.Parse(ctx, text, pattern, locale)
	if err != nil {
		return nil, err
	}
	return newResponse(map[string]interface{}{"time": formatInstant(t)})
}

// Shift implements GregorServer.Shift. A negative amount or
// direction "subtract" moves backwards.
//
//	in:  time, amount, precision, direction?, overstep?, end?
//	out: time
func (s *Server) Shift(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := newRequest("gregor.Shift", in)
	shift := service.ShiftRequest{
		Time:      req.instant("time"),
		Amount:    req.integer("amount"),
		Precision: req.requiredStr("precision"),
		Overstep:  req.optionalBool("overstep"),
		End:       req.optionalBool("end"),
	}
	direction := req.str("direction")
	if req.err != nil {
		return nil, req.err
	}

	var (
		t   = shift.Time
		err error
	)
	switch direction {
	case "", "add":
		t, err = s.service.Add(ctx, shift)
	case "subtract":
		t, err = s.service.Subtract(ctx, shift)
	default:
		return nil, invalidChoice("gregor.Shift", "direction", direction)
	}
	if err != nil {
		return nil, err
	}
	return newResponse(map[string]interface{}{"time": formatInstant(t)})
}

// Boundary implements GregorServer.Boundary
//
//	in:  time, precision, edge ("start" | "end")
//	out: time
func (s *Server) Boundary(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := newRequest("gregor.Boundary", in)
	t := req.instant("time")
	precision := req.requiredStr("precision")
	edge := req.str("edge")
	if req.err != nil {
		return nil, req.err
	}

	var err error
	switch edge {
	case "", "start":
		t, err = s.service.StartOf(ctx, t, precision)
	case "end":
		t, err = s.service.EndOf(ctx, t, precision)
	default:
		return nil, invalidChoice("gregor.Boundary", "edge", edge)
	}
	if err != nil {
		return nil, err
	}
	return newResponse(map[string]interface{}{"time": formatInstant(t)})
}

// Compare implements GregorServer.Compare. The op field selects the
// relation; the result is a number for "compare", a boolean for the
// predicates and an instant for "max" and "min".
//
//	in:  op, a?, b?, time?, start?, end?, times?, precision?, easy?, self?, boundary?
//	out: result
func (s *Server) Compare(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := newRequest("gregor.Compare", in)
	op := req.str("op")
	opts := service.CompareOptions{
		Precision: req.str("precision"),
		Easy:      req.optionalBool("easy"),
		Self:      req.boolean("self"),
		Boundary:  req.str("boundary"),
	}
	if req.err != nil {
		return nil, req.err
	}

	var (
		result interface{}
		err    error
	)
	switch op {
	case "", "compare", "same", "after", "before":
		a, b := req.instant("a"), req.instant("b")
		if req.err != nil {
			return nil, req.err
		}
		switch op {
		case "same":
			result, err = s.service.IsSame(ctx, a, b, opts)
		case "after":
			result, err = s.service.IsAfter(ctx, a, b, opts)
		case "before":
			result, err = s.service.IsBefore(ctx, a, b, opts)
		default:
			var n int
			n, err = s.service.Compare(ctx, a, b, opts)
			result = float64(n)
		}
	case "between":
		t, start, end := req.instant("time"), req.instant("start"), req.instant("end")
		if req.err != nil {
			return nil, req.err
		}
		result, err = s.service.IsBetween(ctx, t, start, end, opts)
	case "max", "min":
		times := req.instants("times")
		if req.err != nil {
			return nil, req.err
		}
		pick := s.service.Max
		if op == "min" {
			pick = s.service.Min
		}
		t, perr := pick(ctx, times, opts)
		result, err = formatInstant(t), perr
	default:
		return nil, invalidChoice("gregor.Compare", "op", op)
	}
	if err != nil {
		return nil, err
	}
	return newResponse(map[string]interface{}{"result": result})
}

// Calendar implements GregorServer.Calendar
//
//	in:  year, month (0-based), locale?
//	out: year, month, month_name, days_in_month, leap_year, first_weekday, weekdays, locale
func (s *Server) Calendar(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req := newRequest("gregor.Calendar", in)
	year, month := req.integer("year"), req.integer("month")
	locale := req.str("locale")
	if req.err != nil {
		return nil, req.err
	}

	info, err := s.service.Calendar(ctx, year, month, locale)
	if err != nil {
		return nil, err
	}
	weekdays := make([]interface{}, len(info.Weekdays))
	for i, w := range info.Weekdays {
		weekdays[i] = w
	}
	return newResponse(map[string]interface{}{
		"year":          info.Year,
		"month":         info.Month,
		"month_name":    info.MonthName,
		"days_in_month": info.DaysInMonth,
		"leap_year":     info.LeapYear,
		"first_weekday": info.FirstWeekday,
		"weekdays":      weekdays,
		"locale":        info.Locale,
	})
}

func invalidChoice(op, field, value string) error {
	return eiyaerror.Newf("unsupported %s %q", field, value).
		WithCode(eiyaerror.CodeInvalidInput).
		WithOperation(op).
		WithDetail("field", field)
}
