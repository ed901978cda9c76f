// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality(), ExpectSuccess() and ExpectFailure() functions report
// failures with t.Errorf() and allow the test to continue. The Demand*()
// variants stop the test with t.Fatalf(). Use them when later checks depend
// on the value being correct, for example a slice length before iteration.
package test
