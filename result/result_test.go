package result

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestImportanceResult_AddNewResults(t *testing.T) {
	r := New("sequential_forward", []string{"a", "b", "c"})

	if err := r.AddNewResults(map[string]float64{"a": 0.9, "b": 0.5, "c": 0.7}, "a"); err != nil {
		t.Fatalf("AddNewResults() round 0 error = %v", err)
	}
	if err := r.AddNewResults(map[string]float64{"b": 0.4, "c": 0.6}, "c"); err != nil {
		t.Fatalf("AddNewResults() round 1 error = %v", err)
	}

	if got, want := r.Ranking(), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Ranking() = %v, want %v", got, want)
	}
	if r.NumRounds() != 2 {
		t.Errorf("NumRounds() = %d, want 2", r.NumRounds())
	}

	rd, err := r.Round(1)
	if err != nil {
		t.Fatalf("Round(1) error = %v", err)
	}
	if rd.Winner != "c" || rd.Scores["b"] != 0.4 {
		t.Errorf("Round(1) = %+v, unexpected", rd)
	}
}

func TestImportanceResult_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		scores map[string]float64
		winner string
	}{
		{
			name:   "unknown winner",
			scores: map[string]float64{"a": 1, "b": 2, "c": 3},
			winner: "d",
		},
		{
			name:   "already ranked winner",
			scores: map[string]float64{"b": 1, "c": 2},
			winner: "a",
		},
		{
			name:   "wrong score count",
			scores: map[string]float64{"b": 1},
			winner: "b",
		},
		{
			name:   "winner missing from scores",
			scores: map[string]float64{"b": 1, "x": 2},
			winner: "c",
		},
		{
			name:   "score for committed variable",
			scores: map[string]float64{"a": 1, "b": 2},
			winner: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New("m", []string{"a", "b", "c"})
			if err := r.AddNewResults(map[string]float64{"a": 0, "b": 1, "c": 2}, "a"); err != nil {
				t.Fatalf("setup round error = %v", err)
			}
			if err := r.AddNewResults(tt.scores, tt.winner); err == nil {
				t.Error("AddNewResults() expected error, got nil")
			}
			// 拒绝后账本不变
			if r.NumRounds() != 1 || len(r.Ranking()) != 1 {
				t.Errorf("ledger changed after rejected round: rounds=%d ranking=%v", r.NumRounds(), r.Ranking())
			}
		})
	}
}

func TestImportanceResult_FullRunThenClosed(t *testing.T) {
	r := New("m", []string{"a", "b"})
	if err := r.AddNewResults(map[string]float64{"a": 1, "b": 2}, "b"); err != nil {
		t.Fatalf("round 0 error = %v", err)
	}
	if err := r.AddNewResults(map[string]float64{"a": 1}, "a"); err != nil {
		t.Fatalf("round 1 error = %v", err)
	}
	if err := r.AddNewResults(map[string]float64{}, "a"); err == nil {
		t.Error("AddNewResults() after full ranking expected error, got nil")
	}
}

func TestImportanceResult_RoundCopiesAreIndependent(t *testing.T) {
	r := New("m", []string{"a", "b"})
	if err := r.AddNewResults(map[string]float64{"a": 1, "b": 2}, "a"); err != nil {
		t.Fatalf("AddNewResults() error = %v", err)
	}

	rd, _ := r.Round(0)
	rd.Scores["a"] = 99

	again, _ := r.Round(0)
	if again.Scores["a"] != 1 {
		t.Errorf("committed round mutated through audit copy: %v", again.Scores["a"])
	}
}

func TestImportanceResult_JSON(t *testing.T) {
	r := New("sequential_forward", []string{"a", "b"})
	if err := r.AddNewResults(map[string]float64{"a": 0.3, "b": 0.8}, "b"); err != nil {
		t.Fatalf("AddNewResults() error = %v", err)
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if snap.Method != "sequential_forward" {
		t.Errorf("snapshot method = %q", snap.Method)
	}
	if !reflect.DeepEqual(snap.Ranking, []string{"b"}) {
		t.Errorf("snapshot ranking = %v", snap.Ranking)
	}
	if len(snap.Rounds) != 1 || snap.Rounds[0].Winner != "b" || snap.Rounds[0].Scores["a"] != 0.3 {
		t.Errorf("snapshot rounds = %+v", snap.Rounds)
	}
}
