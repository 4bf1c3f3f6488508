package output

import (
	"strings"
	"testing"

	"taskify/internal/service"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		num  int
		task service.Task
		want string
	}{
		{
			name: "pending",
			num:  1,
			task: service.Task{Title: "Buy milk", Status: service.StatusPending},
			want: "   1  [ ] Buy milk\n",
		},
		{
			name: "completed",
			num:  2,
			task: service.Task{Title: "Ship release", Status: service.StatusCompleted},
			want: "   2  [x] Ship release\n",
		},
		{
			name: "with description",
			num:  3,
			task: service.Task{Title: "Call dentist", Description: "ask about Friday", Status: service.StatusPending},
			want: "   3  [ ] Call dentist\n          ask about Friday\n",
		},
		{
			name: "untitled",
			num:  4,
			task: service.Task{Title: "   ", Status: service.StatusPending},
			want: "   4  [ ] (untitled)\n",
		},
		{
			name: "newlines folded",
			num:  5,
			task: service.Task{Title: "line one\nline two", Status: service.StatusPending},
			want: "   5  [ ] line one line two\n",
		},
		{
			name: "wide number",
			num:  12345,
			task: service.Task{Title: "t", Status: service.StatusPending},
			want: "12345  [ ] t\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			FormatTask(&buf, tt.num, tt.task)
			if got := buf.String(); got != tt.want {
				t.Errorf("FormatTask() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatFilteredKeepsFullCollectionNumbers(t *testing.T) {
	tasks := []service.Task{
		{Title: "a", Status: service.StatusPending},
		{Title: "b", Status: service.StatusCompleted},
		{Title: "c", Status: service.StatusPending},
	}

	var buf strings.Builder
	FormatFiltered(&buf, tasks, service.FilterCompleted)
	want := "   2  [x] b\n"
	if got := buf.String(); got != want {
		t.Errorf("completed filter: got %q, want %q", got, want)
	}

	buf.Reset()
	FormatFiltered(&buf, tasks, service.FilterPending)
	want = "   1  [ ] a\n   3  [ ] c\n"
	if got := buf.String(); got != want {
		t.Errorf("pending filter: got %q, want %q", got, want)
	}
}

func TestEmptyMessage(t *testing.T) {
	tests := []struct {
		filter service.Filter
		want   string
	}{
		{service.FilterAll, "no tasks found"},
		{service.FilterPending, "no pending tasks"},
		{service.FilterCompleted, "no completed tasks"},
	}
	for _, tt := range tests {
		if got := EmptyMessage(tt.filter); got != tt.want {
			t.Errorf("EmptyMessage(%s) = %q, want %q", tt.filter, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	states := map[State]string{
		StateLoading:   "loading",
		StateError:     "error",
		StateEmpty:     "empty",
		StatePopulated: "populated",
	}
	for s, want := range states {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
