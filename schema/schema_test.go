package schema

import "testing"

func sampleDatabases() []Database {
	return []Database{
		{
			Name: "main",
			Path: "/tmp/shop.db",
			Tables: []Table{
				{Name: "customers"},
				{Name: "orders"},
				{Name: "migrations"},
			},
			References: []Reference{
				{Source: "orders", Sink: "customers"},
				{Source: "migrations", Sink: "orders"},
				{Source: "orders", Sink: "migrations"},
			},
		},
	}
}

func TestFilterTables(t *testing.T) {
	filtered := FilterTables(sampleDatabases(), []string{"migrations"})

	if len(filtered) != 1 {
		t.Fatalf("Expected 1 database after filtering, got %d", len(filtered))
	}

	db := filtered[0]
	if len(db.Tables) != 2 {
		t.Errorf("Expected 2 tables after filtering, got %d", len(db.Tables))
	}

	expectedTables := map[string]bool{"customers": true, "orders": true}
	for _, table := range db.Tables {
		if !expectedTables[table.Name] {
			t.Errorf("Unexpected table in filtered result: %s", table.Name)
		}
	}

	// migrations->orders goes away with its source, orders->migrations stays dangling
	expectedRefs := []Reference{
		{Source: "orders", Sink: "customers"},
		{Source: "orders", Sink: "migrations"},
	}
	if len(db.References) != len(expectedRefs) {
		t.Fatalf("Expected %d references, got %d: %v", len(expectedRefs), len(db.References), db.References)
	}
	for i, ref := range expectedRefs {
		if db.References[i] != ref {
			t.Errorf("Reference %d = %v, want %v", i, db.References[i], ref)
		}
	}

	if db.Name != "main" || db.Path != "/tmp/shop.db" {
		t.Errorf("Database identity not preserved: %s %s", db.Name, db.Path)
	}
}

func TestFilterTablesEmpty(t *testing.T) {
	filtered := FilterTables(sampleDatabases(), []string{})

	if len(filtered[0].Tables) != 3 {
		t.Errorf("Expected 3 tables when exclude list is empty, got %d", len(filtered[0].Tables))
	}
	if len(filtered[0].References) != 3 {
		t.Errorf("Expected 3 references when exclude list is empty, got %d", len(filtered[0].References))
	}
}

func TestFilterTablesOriginalUnmodified(t *testing.T) {
	dbs := sampleDatabases()

	FilterTables(dbs, []string{"migrations"})

	if len(dbs[0].Tables) != 3 {
		t.Errorf("Original database was modified, expected 3 tables, got %d", len(dbs[0].Tables))
	}
	if len(dbs[0].References) != 3 {
		t.Errorf("Original database was modified, expected 3 references, got %d", len(dbs[0].References))
	}
}

func TestDatabaseTable(t *testing.T) {
	db := sampleDatabases()[0]

	table, ok := db.Table("orders")
	if !ok || table.Name != "orders" {
		t.Errorf("Expected to find orders, got %v %v", table, ok)
	}

	if _, ok := db.Table("missing"); ok {
		t.Errorf("Expected missing table lookup to fail")
	}
}

func TestTablePrimaryKeys(t *testing.T) {
	table := Table{
		Name: "order_items",
		Columns: []Column{
			{ID: 0, Name: "order_id", PrimaryKey: true},
			{ID: 1, Name: "product_id", PrimaryKey: true},
			{ID: 2, Name: "quantity"},
		},
	}

	keys := table.PrimaryKeys()
	if len(keys) != 2 || keys[0] != "order_id" || keys[1] != "product_id" {
		t.Errorf("PrimaryKeys() = %v, want [order_id product_id]", keys)
	}
}
