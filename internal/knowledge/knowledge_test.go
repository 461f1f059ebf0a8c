package knowledge

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRepositoryRetrieve(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	t.Run("part number lookup", func(t *testing.T) {
		got, err := repo.Retrieve(ctx, "educational_content", "unspecified_domain",
			"What is the maximum junction temperature of a 2N3904?")
		if err != nil {
			t.Fatalf("Retrieve: %v", err)
		}
		if len(got.Components) != 1 || got.Components[0].PartNumber != "2N3904" {
			t.Errorf("Components = %+v, want the 2N3904 entry", got.Components)
		}
	})

	t.Run("domain pulls standards", func(t *testing.T) {
		got, err := repo.Retrieve(ctx, "compliance_checking", "automotive",
			"buck converter with AEC-Q100 qualification")
		if err != nil {
			t.Fatalf("Retrieve: %v", err)
		}
		names := map[string]bool{}
		for _, s := range got.Standards {
			names[s.Name] = true
		}
		if !names["AEC-Q100"] || !names["ISO 26262"] {
			t.Errorf("Standards = %+v, want the automotive standards", got.Standards)
		}
		if len(got.Components) == 0 {
			t.Error("want the buck converter component via keyword match")
		}
	})

	t.Run("nothing relevant", func(t *testing.T) {
		got, err := repo.Retrieve(ctx, "general_inquiry", "unspecified_domain", "hello")
		if err != nil {
			t.Fatalf("Retrieve: %v", err)
		}
		if !got.Empty() {
			t.Errorf("Context = %+v, want empty", got)
		}
	})
}

type countingRetriever struct {
	calls int
	err   error
}

func (c *countingRetriever) Retrieve(context.Context, string, string, string) (Context, error) {
	c.calls++
	if c.err != nil {
		return Context{}, c.err
	}
	return Context{Standards: []Standard{{Name: "AEC-Q100"}}}, nil
}

func TestCachedRetriever(t *testing.T) {
	ctx := context.Background()

	t.Run("second hit is served from cache", func(t *testing.T) {
		inner := &countingRetriever{}
		c := NewCachedRetriever(inner, 8, time.Minute)

		for i := 0; i < 3; i++ {
			got, err := c.Retrieve(ctx, "compliance_checking", "automotive", "AEC-Q100 query")
			if err != nil {
				t.Fatalf("Retrieve: %v", err)
			}
			if len(got.Standards) != 1 {
				t.Fatalf("Standards = %+v", got.Standards)
			}
		}
		if inner.calls != 1 {
			t.Errorf("inner calls = %d, want 1", inner.calls)
		}
	})

	t.Run("distinct keys miss", func(t *testing.T) {
		inner := &countingRetriever{}
		c := NewCachedRetriever(inner, 8, time.Minute)

		_, _ = c.Retrieve(ctx, "compliance_checking", "automotive", "query one")
		_, _ = c.Retrieve(ctx, "compliance_checking", "medical", "query one")
		if inner.calls != 2 {
			t.Errorf("inner calls = %d, want 2", inner.calls)
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		inner := &countingRetriever{err: errors.New("db down")}
		c := NewCachedRetriever(inner, 8, time.Minute)

		if _, err := c.Retrieve(ctx, "i", "d", "t"); err == nil {
			t.Fatal("want error")
		}
		inner.err = nil
		if _, err := c.Retrieve(ctx, "i", "d", "t"); err != nil {
			t.Fatalf("Retrieve after recovery: %v", err)
		}
		if inner.calls != 2 {
			t.Errorf("inner calls = %d, want 2", inner.calls)
		}
	})
}
