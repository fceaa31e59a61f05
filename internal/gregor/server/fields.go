package server

import (
	"time"

	eiyaerror "github.com/msto63/eiya/foundation/core/error"
	"google.golang.org/protobuf/types/known/structpb"
)

// TimeLayout is the wire format of instants
const TimeLayout = time.RFC3339Nano

// request reads typed fields from a Struct and remembers the first error
type request struct {
	op     string
	fields map[string]*structpb.Value
	err    error
}

func newRequest(op string, in *structpb.Struct) *request {
	return &request{op: op, fields: in.GetFields()}
}

func (r *request) fail(key, msg string) {
	if r.err == nil {
		r.err = eiyaerror.New(msg).
			WithCode(eiyaerror.CodeInvalidInput).
			WithOperation(r.op).
			WithDetail("field", key)
	}
}

func (r *request) has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

func (r *request) str(key string) string {
	v, ok := r.fields[key]
	if !ok {
		return ""
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		r.fail(key, key+" must be a string")
		return ""
	}
	return s.StringValue
}

func (r *request) requiredStr(key string) string {
	if !r.has(key) {
		r.fail(key, key+" is required")
		return ""
	}
	return r.str(key)
}

func (r *request) integer(key string) int {
	v, ok := r.fields[key]
	if !ok {
		r.fail(key, key+" is required")
		return 0
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != float64(int(n.NumberValue)) {
		r.fail(key, key+" must be an integer")
		return 0
	}
	return int(n.NumberValue)
}

func (r *request) boolean(key string) bool {
	if b := r.optionalBool(key); b != nil {
		return *b
	}
	return false
}

func (r *request) optionalBool(key string) *bool {
	v, ok := r.fields[key]
	if !ok {
		return nil
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		r.fail(key, key+" must be a boolean")
		return nil
	}
	return &b.BoolValue
}

func (r *request) instant(key string) time.Time {
	s := r.requiredStr(key)
	if r.err != nil {
		return time.Time{}
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		r.fail(key, key+" must be an RFC 3339 instant")
		return time.Time{}
	}
	return t
}

func (r *request) instants(key string) []time.Time {
	v, ok := r.fields[key]
	if !ok {
		return nil
	}
	list := v.GetListValue()
	if list == nil {
		r.fail(key, key+" must be a list")
		return nil
	}
	out := make([]time.Time, 0, len(list.GetValues()))
	for _, item := range list.GetValues() {
		t, err := time.Parse(TimeLayout, item.GetStringValue())
		if err != nil {
			r.fail(key, key+" must hold RFC 3339 instants")
			return nil
		}
		out = append(out, t)
	}
	return out
}

func formatInstant(t time.Time) string {
	return t.Format(TimeLayout)
}

func newResponse(fields map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, eiyaerror.Wrap(err, "failed to encode response").
			WithCode(eiyaerror.CodeInternal)
	}
	return out, nil
}
