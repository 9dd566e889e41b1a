package dbopen

import (
	"database/sql"
	"errors"
	"testing"
)

func TestIsBusy(t *testing.T) {
	if IsBusy(nil) {
		t.Fatal("nil error must not be busy")
	}
	if !IsBusy(errors.New("SQLITE_BUSY (5)")) {
		t.Fatal("SQLITE_BUSY must be busy")
	}
	if !IsBusy(errors.New("database is locked")) {
		t.Fatal("locked must be busy")
	}
	if IsBusy(errors.New("no such table: entries")) {
		t.Fatal("unrelated error must not be busy")
	}
}

func TestRunTxRetriesOnBusy(t *testing.T) {
	db := OpenMemory(t, WithSchema(`CREATE TABLE kv (k TEXT PRIMARY KEY, v TEXT)`))

	calls := 0
	err := RunTx(t.Context(), db, func(tx *sql.Tx) error {
		calls++
		if calls == 1 {
			return errors.New("database is locked")
		}
		_, err := tx.Exec(`INSERT INTO kv (k, v) VALUES ('a', 'b')`)
		return err
	})
	if err != nil {
		t.Fatalf("run tx: %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls: got %d, want 2", calls)
	}

	var v string
	if err := db.QueryRow(`SELECT v FROM kv WHERE k = 'a'`).Scan(&v); err != nil || v != "b" {
		t.Fatalf("row after retry: got (%q, %v)", v, err)
	}
}

func TestRunTxStopsOnOtherErrors(t *testing.T) {
	db := OpenMemory(t)

	calls := 0
	wantErr := errors.New("boom")
	err := RunTx(t.Context(), db, func(*sql.Tx) error {
		calls++
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("error: got %v, want %v", err, wantErr)
	}
	if calls != 1 {
		t.Fatalf("calls: got %d, want 1", calls)
	}
}

func TestRunTxGivesUpAfterRetries(t *testing.T) {
	db := OpenMemory(t)

	calls := 0
	err := RunTx(t.Context(), db, func(*sql.Tx) error {
		calls++
		return errors.New("database is locked")
	})
	if err == nil {
		t.Fatal("want error after exhausted retries")
	}
	if calls != txRetries {
		t.Fatalf("calls: got %d, want %d", calls, txRetries)
	}
}
