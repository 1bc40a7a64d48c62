package trace

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"dispatch/types"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		entry := map[string]interface{}{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Line is not JSON: %q (%v)", line, err)
		}
		lines = append(lines, entry)
	}
	return lines
}

func TestRecorder_WritesEventsAndCommands(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, "abc")

	r.CarEvent(3, 1, types.CarEvent{Kind: types.EV_PassingFloor, Floor: 4, Direction: types.DIR_Up})
	r.HallCall(3, 7, types.DIR_Down)
	r.Command(4, 1, 7)

	lines := decodeLines(t, &buf)
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %s", len(lines), buf.String())
	}

	if lines[0]["event"] != "passing_floor" || lines[0]["direction"] != "up" || lines[0]["floor"] != float64(4) {
		t.Errorf("Car event not as expected: %v", lines[0])
	}
	if lines[1]["type"] != "event" || lines[1]["direction"] != "down" {
		t.Errorf("Hall call not as expected: %v", lines[1])
	}
	if lines[2]["type"] != "command" || lines[2]["floor"] != float64(7) || lines[2]["car"] != float64(1) {
		t.Errorf("Command not as expected: %v", lines[2])
	}
	for _, l := range lines {
		if l["run"] != "abc" {
			t.Errorf("Missing run id: %v", l)
		}
	}
}

func TestRecorder_IdleHasNoFloor(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "x").CarEvent(0, 0, types.CarEvent{Kind: types.EV_Idle})

	line := decodeLines(t, &buf)[0]
	if _, ok := line["floor"]; ok {
		t.Errorf("Idle events carry no floor: %v", line)
	}
}

func TestNop(t *testing.T) {
	r := Nop()
	r.Command(0, 0, 1)
	r.Arrival(0, 0, 1, 2)
}
