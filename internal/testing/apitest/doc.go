// Package apitest provides test server utilities for the activities API.
//
// The apitest package starts fully wired in-process servers with
// automatic seeding and cleanup.
//
// # Test Server Setup
//
// Create a server for each test:
//
//	func TestSomething(t *testing.T) {
//	    srv := apitest.New(t)
//
//	    var activities map[string]model.Activity
//	    status := srv.GetJSON("/activities", &activities)
//	}
//
// Cleanup is registered on the test, so no explicit Close is needed.
//
// # Request Helpers
//
// Issue requests and decode JSON responses:
//
//	var msg handler.MessageResponse
//	status := srv.PostJSON(apitest.SignupPath("Chess Club", "eve@mergington.edu"), &msg)
//
// # Path Helpers
//
// Build escaped URLs for activities with spaces in their names:
//
//	apitest.ActivityPath("Chess Club")               // /activities/Chess%20Club
//	apitest.SignupPath("Chess Club", "a@b.edu")      // .../signup?email=a%40b.edu
//	apitest.UnregisterPath("Chess Club", "a@b.edu")  // .../unregister?email=a%40b.edu
//
// # Isolation
//
// Each Server owns a fresh registry seeded from the embedded catalog.
// Mutations in one test never leak into another.
package apitest
