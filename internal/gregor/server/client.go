package server

import (
	"context"
	"time"

	coreGrpc "github.com/msto63/eiya/pkg/core/grpc"
	"github.com/msto63/eiya/internal/gregor/service"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls a remote Gregor service
type Client struct {
	conn grpc.ClientConnInterface
}

// NewClient wraps an established connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// invoke calls method and converts status errors back to eiya errors
func (c *Client) invoke(ctx context.Context, method string, fields map[string]interface{}) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethod(method), in, out); err != nil {
		return nil, coreGrpc.FromStatus(err)
	}
	return out, nil
}

func (c *Client) invokeTime(ctx context.Context, method string, fields map[string]interface{}) (time.Time, error) {
	out, err := c.invoke(ctx, method, fields)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(TimeLayout, out.GetFields()["time"].GetStringValue())
}

// Format renders t remotely
func (c *Client) Format(ctx context.Context, t time.Time, pattern, locale string) (string, error) {
	out, err := c.invoke(ctx, MethodFormat, map[string]interface{}{
		"time":    formatInstant(t),
		"pattern": pattern,
		"locale":  locale,
	})
	if err != nil {
		return "", err
	}
	return out.GetFields()["text"].GetStringValue(), nil
}

// Parse reads text remotely
func (c *Client) Parse(ctx context.Context, text, pattern, locale string) (time.Time, error) {
	return c.invokeTime(ctx, MethodParse, map[string]interface{}{
		"text":    text,
		"pattern": pattern,
		"locale":  locale,
	})
}

// Add shifts req.Time forward
func (c *Client) Add(ctx context.Context, req service.ShiftRequest) (time.Time, error) {
	return c.invokeTime(ctx, MethodShift, shiftFields(req, "add"))
}

// Subtract shifts req.Time backward
func (c *Client) Subtract(ctx context.Context, req service.ShiftRequest) (time.Time, error) {
	return c.invokeTime(ctx, MethodShift, shiftFields(req, "subtract"))
}

func shiftFields(req service.ShiftRequest, direction string) map[string]interface{} {
	fields := map[string]interface{}{
		"time":      formatInstant(req.Time),
		"amount":    req.Amount,
		"precision": req.Precision,
		"direction": direction,
	}
	if req.Overstep != nil {
		fields["overstep"] = *req.Overstep
	}
	if req.End != nil {
		fields["end"] = *req.End
	}
	return fields
}

// StartOf truncates t remotely
func (c *Client) StartOf(ctx context.Context, t time.Time, precision string) (time.Time, error) {
	return c.invokeTime(ctx, MethodBoundary, map[string]interface{}{
		"time": formatInstant(t), "precision": precision, "edge": "start",
	})
}

// EndOf moves t to the end of its period remotely
func (c *Client) EndOf(ctx context.Context, t time.Time, precision string) (time.Time, error) {
	return c.invokeTime(ctx, MethodBoundary, map[string]interface{}{
		"time": formatInstant(t), "precision": precision, "edge": "end",
	})
}

func compareFields(op string, opts service.CompareOptions) map[string]interface{} {
	fields := map[string]interface{}{"op": op, "self": opts.Self}
	if opts.Precision != "" {
		fields["precision"] = opts.Precision
	}
	if opts.Easy != nil {
		fields["easy"] = *opts.Easy
	}
	if opts.Boundary != "" {
		fields["boundary"] = opts.Boundary
	}
	return fields
}

// Compare returns -1, 0 or 1
func (c *Client) Compare(ctx context.Context, a, b time.Time, opts service.CompareOptions) (int, error) {
	fields := compareFields("compare", opts)
	fields["a"], fields["b"] = formatInstant(a), formatInstant(b)
	out, err := c.invoke(ctx, MethodCompare, fields)
	if err != nil {
		return 0, err
	}
	return int(out.GetFields()["result"].GetNumberValue()), nil
}

// Relation evaluates "same", "after" or "before" remotely
func (c *Client) Relation(ctx context.Context, op string, a, b time.Time, opts service.CompareOptions) (bool, error) {
	fields := compareFields(op, opts)
	fields["a"], fields["b"] = formatInstant(a), formatInstant(b)
	out, err := c.invoke(ctx, MethodCompare, fields)
	if err != nil {
		return false, err
	}
	return out.GetFields()["result"].GetBoolValue(), nil
}

// IsBetween evaluates the between relation remotely
func (c *Client) IsBetween(ctx context.Context, t, start, end time.Time, opts service.CompareOptions) (bool, error) {
	fields := compareFields("between", opts)
	fields["time"], fields["start"], fields["end"] = formatInstant(t), formatInstant(start), formatInstant(end)
	out, err := c.invoke(ctx, MethodCompare, fields)
	if err != nil {
		return false, err
	}
	return out.GetFields()["result"].GetBoolValue(), nil
}

// Extreme returns the latest ("max") or earliest ("min") instant
func (c *Client) Extreme(ctx context.Context, op string, times []time.Time, opts service.CompareOptions) (time.Time, error) {
	list := make([]interface{}, len(times))
	for i, t := range times {
		list[i] = formatInstant(t)
	}
	fields := compareFields(op, opts)
	fields["times"] = list
	out, err := c.invoke(ctx, MethodCompare, fields)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(TimeLayout, out.GetFields()["result"].GetStringValue())
}

// Calendar describes a month remotely
func (c *Client) Calendar(ctx context.Context, year, month0 int, locale string) (*service.CalendarInfo, error) {
	out, err := c.invoke(ctx, MethodCalendar, map[string]interface{}{
		"year": year, "month": month0, "locale": locale,
	})
	if err != nil {
		return nil, err
	}
	f := out.GetFields()
	info := &service.CalendarInfo{
		Year:         int(f["year"].GetNumberValue()),
		Month:        int(f["month"].GetNumberValue()),
		MonthName:    f["month_name"].GetStringValue(),
		DaysInMonth:  int(f["days_in_month"].GetNumberValue()),
		LeapYear:     f["leap_year"].GetBoolValue(),
		FirstWeekday: int(f["first_weekday"].GetNumberValue()),
		Locale:       f["locale"].GetStringValue(),
	}
	for _, v := range f["weekdays"].GetListValue().GetValues() {
		info.Weekdays = append(info.Weekdays, v.GetStringValue())
	}
	return info, nil
}

// Healthy asks the standard health service about eiya.v1.Gregor
func (c *Client) Healthy(ctx context.Context) (bool, error) {
	resp, err := healthpb.NewHealthClient(c.conn).Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		return false, coreGrpc.FromStatus(err)
	}
	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}
