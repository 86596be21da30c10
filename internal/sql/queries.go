package sql

import "embed"

// Migrations holds the schema DDL applied by db.ApplyMigrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS

//go:embed queries/insert_run.sql
var InsertRun string

//go:embed queries/insert_source_file.sql
var InsertSourceFile string

//go:embed queries/update_run_status.sql
var UpdateRunStatus string
