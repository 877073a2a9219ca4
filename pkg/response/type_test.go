package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"item-service/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tests := map[string]struct {
		in   time.Time
		want string
	}{
		"utc":       {time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), `"2024-05-01 15:30:00"`},
		"offset":    {time.Date(2024, 5, 1, 17, 30, 0, 0, time.FixedZone("CEST", 2*3600)), `"2024-05-01 15:30:00"`},
		"zero time": {time.Time{}, `null`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b, err := json.Marshal(response.DateTime(tt.in))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, b)
			}
		})
	}
}
