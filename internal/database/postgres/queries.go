package postgres

// queryListTables lists ordinary and partitioned tables of the schema at the
// head of search_path. Views, sequences and partitions' children are left
// out.
const queryListTables = `
	SELECT c.relname
	FROM pg_catalog.pg_class c
	JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
	WHERE n.nspname = current_schema()
	  AND c.relkind IN ('r', 'p')
	  AND NOT c.relispartition
	ORDER BY c.relname`
