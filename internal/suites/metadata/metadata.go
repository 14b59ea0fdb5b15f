// Package metadata validates a genome metadata database.
//
// Checks performed:
//  1. Database connection is established (failure).
//  2. All tables contain data (failure).
//  3. Each organism is linked to an assembly (failure).
//  4. Each assembly is linked to a genome (failure).
//  5. Each genome has a production name (failure).
//  6. Each genome release is linked to an Ensembl release (failure).
package metadata

import (
	"datacheck/internal/check"
	"datacheck/internal/db"
)

func init() {
	check.Register(&check.Suite{
		Name:        "metadata",
		Description: "Genome metadata database integrity",
		NeedsDB:     true,
		Checks: []check.Check{
			{Name: "check_database", Fn: checkDatabase},
			{Name: "check_tables", Fn: checkTables},
			{Name: "check_organism_assembly_link", Fn: checkOrganismAssemblyLink},
			{Name: "check_assembly_genome_link", Fn: checkAssemblyGenomeLink},
			{Name: "check_genome_production_name", Fn: checkGenomeProductionName},
			{Name: "check_genome_release_link", Fn: checkGenomeReleaseLink},
		},
	})
}

func checkDatabase(c *check.Context) {
	if c.DB == nil {
		c.Failf("Database session is not available")
	}
	c.FailOnError(c.DB.Ping())
}

func checkTables(c *check.Context) {
	table, err := db.FirstEmptyTable(c.DB)
	c.FailOnError(err)
	if table != "" {
		c.Failf("Table %s is empty", table)
	}
}

func checkOrganismAssemblyLink(c *check.Context) {
	checkLink(c, "organism", "assembly", "organism_id", "organism_id")
}

func checkAssemblyGenomeLink(c *check.Context) {
	checkLink(c, "assembly", "genome", "assembly_id", "assembly_id")
}

func checkGenomeReleaseLink(c *check.Context) {
	checkLink(c, "genome_release", "ensembl_release", "release_id", "release_id")
}

func checkGenomeProductionName(c *check.Context) {
	id, err := db.FirstMissingAttribute(c.DB, "genome", "production_name", "genome_id")
	c.FailOnError(err)
	if id != "" {
		c.Failf("Entry %s in genome does not have a valid production_name", id)
	}
}

func checkLink(c *check.Context, source, target, sourceKey, targetKey string) {
	id, err := db.FirstUnlinkedRow(c.DB, source, target, sourceKey, targetKey)
	c.FailOnError(err)
	if id != "" {
		c.Failf("Entry %s in %s is not linked to any entry in %s", id, source, target)
	}
}
