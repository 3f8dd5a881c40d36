package logger

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// TestConcurrency_EntriesStayContiguous verifies that a prompt line and its
// payload block are never separated by another goroutine's output.
func TestConcurrency_EntriesStayContiguous(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "DEBUG", NoColor: true, Output: &buf})

	const numGoroutines = 100
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			for j := range messagesPerGoroutine {
				l.Info(fmt.Sprintf("worker-%d-%d", id, j), fmt.Sprintf("payload-%d-%d", id, j), Inline(false))
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if want := numGoroutines * messagesPerGoroutine * 2; len(lines) != want {
		t.Fatalf("expected %d lines, got %d", want, len(lines))
	}
	for i := 0; i < len(lines); i += 2 {
		head, body := lines[i], lines[i+1]
		if !strings.HasPrefix(head, " [INFO] worker-") {
			t.Fatalf("line %d is not a prompt: %q", i, head)
		}
		id := strings.TrimPrefix(head, " [INFO] worker-")
		if body != "payload-"+id {
			t.Fatalf("entry %q was split: next line %q", head, body)
		}
	}
}

// TestConcurrency_SetLevelWhileLogging exercises the mutators alongside
// logging calls.
func TestConcurrency_SetLevelWhileLogging(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "DEBUG", NoColor: true, Output: &buf})

	const numGoroutines = 50
	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)
	for i := range numGoroutines {
		go func(id int) {
			defer wg.Done()
			l.Error("err", id)
		}(i)
		go func(id int) {
			defer wg.Done()
			l.SetLevel(AllLevels()[id%len(AllLevels())])
			l.SetTypeHinting(id%2 == 0)
		}(i)
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "[ERROR]"); got != numGoroutines {
		t.Fatalf("ERROR entries pass every threshold; expected %d, got %d", numGoroutines, got)
	}
}
