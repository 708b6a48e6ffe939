package pagination

import "testing"

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		total       int
		wantPages   int
		wantNext    bool
		wantPrev    bool
	}{
		{"25 rows, page 1 of 3", 1, 10, 25, 3, true, false},
		{"25 rows, page 2 of 3", 2, 10, 25, 3, true, true},
		{"25 rows, page 3 of 3", 3, 10, 25, 3, false, true},
		{"exact multiple", 2, 10, 20, 2, false, true},
		{"empty result", 1, 10, 0, 0, false, false},
		{"single short page", 1, 10, 3, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMeta(tt.page, tt.limit, tt.total)
			if m.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", m.TotalPages, tt.wantPages)
			}
			if m.HasNext != tt.wantNext {
				t.Errorf("HasNext = %v, want %v", m.HasNext, tt.wantNext)
			}
			if m.HasPrev != tt.wantPrev {
				t.Errorf("HasPrev = %v, want %v", m.HasPrev, tt.wantPrev)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name                string
		page, limit         int
		wantPage, wantLimit int
	}{
		{"defaults", 0, 0, 1, DefaultLimit},
		{"negative page", -3, 10, 1, 10},
		{"limit over cap", 1, 500, 1, DefaultLimit},
		{"valid passthrough", 4, 50, 4, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := Normalize(tt.page, tt.limit)
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("Normalize(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.limit, page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestNewPage_NilData(t *testing.T) {
	p := NewPage[int](nil, 1, 10, 0)
	if p.Data == nil {
		t.Error("NewPage must not return nil data (it would serialize as null)")
	}
}
