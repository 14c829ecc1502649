package memstore

import (
	"errors"
	"sync"
	"testing"
)

type rec struct {
	id  string
	val int
}

func (r *rec) RecordID() string { return r.id }

func TestStore_PreservesOrder(t *testing.T) {
	s := New(&rec{id: "b"}, &rec{id: "a"}, &rec{id: "c"})
	all := s.All()
	if len(all) != 3 || all[0].id != "b" || all[1].id != "a" || all[2].id != "c" {
		t.Errorf("expected insertion order b,a,c got %v", all)
	}
}

func TestStore_AppendDuplicate(t *testing.T) {
	s := New(&rec{id: "a"})
	if err := s.Append(&rec{id: "a"}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
	if n := len(s.All()); n != 1 {
		t.Errorf("expected 1 item, got %d", n)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := New[*rec]()
	if _, err := s.Get("x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ReplaceKeepsPosition(t *testing.T) {
	s := New(&rec{id: "a", val: 1}, &rec{id: "b", val: 2})
	if err := s.Replace(&rec{id: "a", val: 9}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	all := s.All()
	if all[0].id != "a" || all[0].val != 9 {
		t.Errorf("expected a=9 first, got %+v", all[0])
	}
	if err := s.Replace(&rec{id: "z"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Where(t *testing.T) {
	s := New(&rec{id: "a", val: 1}, &rec{id: "b", val: 2}, &rec{id: "c", val: 3})
	odd := s.Where(func(r *rec) bool { return r.val%2 == 1 })
	if len(odd) != 2 || odd[0].id != "a" || odd[1].id != "c" {
		t.Errorf("unexpected result: %v", odd)
	}
}

func TestStore_ConcurrentAppend(t *testing.T) {
	s := New[*rec]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append(&rec{id: string(rune('A' + i))})
			_ = s.All()
		}(i)
	}
	wg.Wait()
	if n := len(s.All()); n != 50 {
		t.Errorf("expected 50 items, got %d", n)
	}
}
