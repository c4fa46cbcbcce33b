package extract

import "testing"

func TestIdentifyStore(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		subject string
		sender  string
		want    string
	}{
		{
			name: "should match store in receipt text",
			text: "WALMART SUPERCENTER #123\n123 MAIN ST",
			want: "Walmart",
		},
		{
			name: "should match hyphenated spelling",
			text: "WAL-MART STORE 4567",
			want: "Walmart",
		},
		{
			name: "should match multi word store",
			text: "WHOLE  FOODS MARKET",
			want: "Whole Foods",
		},
		{
			name:   "should match store from sender address",
			text:   "Thanks for shopping with us",
			sender: "orders@instacart.com",
			want:   "Instacart",
		},
		{
			name:    "should match store from subject",
			text:    "order details below",
			subject: "Your Amazon order has shipped",
			want:    "Amazon",
		},
		{
			name: "declaration order wins on overlap",
			text: "walmart and target on the same receipt",
			want: "Walmart",
		},
		{
			name: "unknown store sentinel",
			text: "CORNER DELI\nBANANAS 1.99",
			want: UnknownStore,
		},
		{
			name: "empty text never fails",
			text: "",
			want: UnknownStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IdentifyStore(tt.text, tt.subject, tt.sender)
			if got != tt.want {
				t.Errorf("IdentifyStore() = %q, want %q", got, tt.want)
			}
		})
	}
}
