package schema

// FilterTables removes the excluded tables from every database, together with
// the references they declare. References pointing at an excluded table are
// kept. It returns new Databases; the originals are not modified.
func FilterTables(dbs []Database, excludeTables []string) []Database {
	excludeMap := make(map[string]bool)
	for _, table := range excludeTables {
		excludeMap[table] = true
	}

	filtered := make([]Database, 0, len(dbs))
	for _, db := range dbs {
		tables := make([]Table, 0, len(db.Tables))
		for _, table := range db.Tables {
			if !excludeMap[table.Name] {
				tables = append(tables, table)
			}
		}

		references := make([]Reference, 0, len(db.References))
		for _, ref := range db.References {
			if !excludeMap[ref.Source] {
				references = append(references, ref)
			}
		}

		filtered = append(filtered, Database{
			Name:       db.Name,
			Path:       db.Path,
			Tables:     tables,
			References: references,
		})
	}

	return filtered
}
