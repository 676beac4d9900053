package entities

// DefaultDatabase is used when no database is requested.
const DefaultDatabase = "sqlite3"

type databaseAdapter struct {
	Package  string
	Versions []string
}

// databaseAdapters maps a --database value to the adapter gem that supports it.
//
//nolint:gochecknoglobals // fixed lookup table
var databaseAdapters = map[string]databaseAdapter{
	"mysql":          {Package: "mysql2", Versions: []string{"~> 0.5"}},
	"postgresql":     {Package: "pg", Versions: []string{"~> 1.1"}},
	"sqlite3":        {Package: "sqlite3", Versions: []string{"~> 1.4"}},
	"oracle":         {Package: "activerecord-oracle_enhanced-adapter"},
	"sqlserver":      {Package: "activerecord-sqlserver-adapter"},
	"jdbcmysql":      {Package: "activerecord-jdbcmysql-adapter"},
	"jdbcsqlite3":    {Package: "activerecord-jdbcsqlite3-adapter"},
	"jdbcpostgresql": {Package: "activerecord-jdbcpostgresql-adapter"},
	"jdbc":           {Package: "activerecord-jdbc-adapter"},
}

// jdbcDatabases are the replacements used on the alternate runtime.
//
//nolint:gochecknoglobals // fixed lookup table
var jdbcDatabases = map[string]string{
	"mysql":      "jdbcmysql",
	"postgresql": "jdbcpostgresql",
	"sqlite3":    "jdbcsqlite3",
}

// SupportedDatabases lists the accepted --database values in display order.
func SupportedDatabases() []string {
	return []string{
		"mysql", "postgresql", "sqlite3", "oracle", "sqlserver",
		"jdbcmysql", "jdbcsqlite3", "jdbcpostgresql", "jdbc",
	}
}

// IsSupportedDatabase reports whether name is one of SupportedDatabases.
func IsSupportedDatabase(name string) bool {
	_, ok := databaseAdapters[name]
	return ok
}

func adapterFor(database string) databaseAdapter {
	if adapter, ok := databaseAdapters[database]; ok {
		return adapter
	}
	return databaseAdapter{Package: database}
}

func jdbcDatabaseFor(database string) string {
	if converted, ok := jdbcDatabases[database]; ok {
		return converted
	}
	return database
}
