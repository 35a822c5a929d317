package scan

import "testing"

func TestFindTime(t *testing.T) {
	tests := []struct {
		name      string
		span      string
		wantStart string
		wantEnd   string
		wantOK    bool
	}{
		{"simple pm", "class at 2:30pm", "14:30", "", true},
		{"simple am", "starts 10:30am", "10:30", "", true},
		{"noon pm unchanged", "lunch at 12:00pm", "12:00", "", true},
		{"midnight am", "opens 12am", "00:00", "", true},
		{"bare hour pm", "6pm", "18:00", "", true},
		{"range meridiem applies per side", "4:30-6:20 pm", "04:30", "18:20", true},
		{"range both marked", "6pm-8pm", "18:00", "20:00", true},
		{"already 24 hour", "meet at 14:30", "14:30", "", true},
		{"first match wins", "9:00am then 2:00pm", "09:00", "", true},
		{"bare day number ignored", "due Jan 8th", "", "", false},
		{"no time", "nothing here", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindTime(tt.span)
			if ok != tt.wantOK {
				t.Fatalf("FindTime(%q) ok = %v, want %v", tt.span, ok, tt.wantOK)
			}
			if got.Start != tt.wantStart || got.End != tt.wantEnd {
				t.Errorf("FindTime(%q) = (%q, %q), want (%q, %q)",
					tt.span, got.Start, got.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		hour   int
		minute string
		period string
		want   string
		ok     bool
	}{
		{2, "30", "pm", "14:30", true},
		{2, "30", "PM", "14:30", true},
		{12, "00", "pm", "12:00", true},
		{12, "", "am", "00:00", true},
		{9, "", "", "09:00", true},
		{14, "30", "", "14:30", true},
		{25, "", "", "", false},
		{10, "75", "", "", false},
	}

	for _, tt := range tests {
		got, ok := normalizeClock(tt.hour, tt.minute, tt.period)
		if got != tt.want || ok != tt.ok {
			t.Errorf("normalizeClock(%d, %q, %q) = (%q, %v), want (%q, %v)",
				tt.hour, tt.minute, tt.period, got, ok, tt.want, tt.ok)
		}
	}
}
