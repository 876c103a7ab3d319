// Kalainayam - Fashion Retail Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kalainayam

package dataset

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/kalainayam/internal/records"
)

type stubLoader struct {
	mu    sync.Mutex
	table records.Table
	err   error
}

func (s *stubLoader) Load(context.Context) (records.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table, s.err
}

func (s *stubLoader) set(table records.Table, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table, s.err = table, err
}

func salesTable(items ...string) records.Table {
	t := records.Table{Header: []string{
		records.ColCustomer, records.ColItem, records.ColAmount,
		records.ColDate, records.ColRating, records.ColPayment,
	}}
	for _, item := range items {
		t.Rows = append(t.Rows, []string{"1", item, "100", "01-02-2023", "4", "Cash"})
	}
	return t
}

func newSalesRegistry(l TableLoader) *Registry {
	return NewRegistry(
		Source{Name: Sales, Format: "csv", Schema: records.SalesSchema(), Loader: l},
		Source{Name: Reviews},
		zerolog.Nop(),
	)
}

func TestReloadPublishesSnapshot(t *testing.T) {
	t.Parallel()

	loader := &stubLoader{table: salesTable("Coat", "Boots")}
	reg := newSalesRegistry(loader)
	if reg.Ready() || reg.Current() != nil {
		t.Fatal("registry ready before first load")
	}

	snap, err := reg.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if !reg.Ready() || reg.Current() != snap {
		t.Fatal("snapshot not published")
	}
	if snap.Version != 1 || snap.Sales.Len() != 2 || snap.Reviews != nil {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestReloadFailureKeepsPreviousSnapshot(t *testing.T) {
	t.Parallel()

	loader := &stubLoader{table: salesTable("Coat")}
	reg := newSalesRegistry(loader)
	first, err := reg.Reload(context.Background())
	if err != nil {
		t.Fatalf("first Reload: %v", err)
	}

	loader.set(records.Table{Header: []string{"nothing"}}, nil)
	got, err := reg.Reload(context.Background())
	var schemaErr *records.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("err = %v, want SchemaError", err)
	}
	if got != first || reg.Current() != first {
		t.Error("failed reload replaced the snapshot")
	}

	loader.set(records.Table{}, errors.New("gone"))
	if _, err := reg.Reload(context.Background()); err == nil {
		t.Error("expected read error")
	}
	if reg.Current().Sales.Len() != 1 {
		t.Error("previous store lost after read error")
	}
}

func TestReloadPartialFailure(t *testing.T) {
	t.Parallel()

	sales := &stubLoader{table: salesTable("Coat")}
	reviews := &stubLoader{err: errors.New("locked")}
	reg := NewRegistry(
		Source{Schema: records.SalesSchema(), Loader: sales},
		Source{Schema: records.ReviewSchema(), Loader: reviews},
		zerolog.Nop(),
	)

	snap, err := reg.Reload(context.Background())
	if err == nil {
		t.Fatal("expected joined error for reviews")
	}
	if snap == nil || snap.Sales == nil || snap.Reviews != nil {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	t.Parallel()

	loader := &stubLoader{table: salesTable("A")}
	reg := newSalesRegistry(loader)
	if _, err := reg.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				snap := reg.Current()
				if snap == nil || snap.Sales == nil {
					t.Error("reader observed empty snapshot")
					return
				}
				if n := snap.Sales.Len(); n != 1 && n != 2 {
					t.Errorf("reader observed %d rows", n)
					return
				}
			}
		}()
	}
	for i := 0; i < 20; i++ {
		if i%2 == 0 {
			loader.set(salesTable("A", "B"), nil)
		} else {
			loader.set(salesTable("A"), nil)
		}
		if _, err := reg.Reload(context.Background()); err != nil {
			t.Errorf("Reload: %v", err)
		}
	}
	wg.Wait()

	if v := reg.Current().Version; v != 21 {
		t.Errorf("version = %d, want 21", v)
	}
}
