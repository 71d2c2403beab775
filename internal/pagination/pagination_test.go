package pagination

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		skip    string
		limit   string
		want    Page
		wantErr bool
	}{
		{"defaults", "", "", Page{0, 100}, false},
		{"explicit", "20", "10", Page{20, 10}, false},
		{"zero limit uses default", "0", "0", Page{0, 100}, false},
		{"capped", "0", "5000", Page{0, 1000}, false},
		{"negative skip", "-1", "", Page{}, true},
		{"negative limit", "", "-5", Page{}, true},
		{"not a number", "abc", "", Page{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.skip, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
