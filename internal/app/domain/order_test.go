package domain

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Status
		wantErr bool
	}{
		{name: "pending", in: "pending", want: StatusPending},
		{name: "processing", in: "processing", want: StatusProcessing},
		{name: "shipped", in: "shipped", want: StatusShipped},
		{name: "delivered", in: "delivered", want: StatusDelivered},
		{name: "cancelled", in: "cancelled", want: StatusCancelled},
		{name: "unknown", in: "refunded", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseStatus(test.in)
			if test.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", test.in)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != test.want {
				t.Errorf("got %s, want %s", got, test.want)
			}
		})
	}
}

func TestStatusOrdinal(t *testing.T) {
	tests := []struct {
		status Status
		want   int
	}{
		{StatusPending, 0},
		{StatusProcessing, 1},
		{StatusShipped, 2},
		{StatusDelivered, 3},
		{StatusCancelled, -1},
		{Status("bogus"), -1},
	}

	for _, test := range tests {
		t.Run(string(test.status), func(t *testing.T) {
			if got := test.status.Ordinal(); got != test.want {
				t.Errorf("Ordinal(%s) = %d, want %d", test.status, got, test.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{name: "pending_to_processing", from: StatusPending, to: StatusProcessing, want: true},
		{name: "processing_to_shipped", from: StatusProcessing, to: StatusShipped, want: true},
		{name: "shipped_to_delivered", from: StatusShipped, to: StatusDelivered, want: true},
		{name: "pending_to_shipped_skips", from: StatusPending, to: StatusShipped, want: false},
		{name: "shipped_to_processing_backwards", from: StatusShipped, to: StatusProcessing, want: false},
		{name: "pending_to_cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "shipped_to_cancelled", from: StatusShipped, to: StatusCancelled, want: true},
		{name: "delivered_to_cancelled", from: StatusDelivered, to: StatusCancelled, want: false},
		{name: "cancelled_is_terminal", from: StatusCancelled, to: StatusProcessing, want: false},
		{name: "delivered_is_terminal", from: StatusDelivered, to: StatusDelivered, want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := CanTransition(test.from, test.to); got != test.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", test.from, test.to, got, test.want)
			}
		})
	}
}
