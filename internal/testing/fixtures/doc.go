// Package fixtures publishes the seed expectations for acceptance tests.
//
// The fixtures package restates the embedded catalog's contents as plain
// constants and functions, giving tests an independent source of truth for
// what a freshly seeded server contains.
//
// # Seed Expectations
//
//	fixtures.SeedActivityCount        // 9
//	fixtures.SeedActivityNames()      // every catalog activity name
//	fixtures.SeedRoster("Chess Club") // seeded participant emails, in order
//
// # Email Helpers
//
// Students are identified by school email address:
//
//	fixtures.Email("michael") // "michael@mergington.edu"
//
// If the embedded catalog changes, update this package in the same commit;
// the acceptance suite compares the two.
package fixtures
