// Package services contains the application services for the store back office.
//
// All four entity services share one generic CRUD engine parameterized by the
// aggregate and its repository port. Mutations run inside a unit of work with
// an explicit Begin/Commit and a deferred Rollback; reads go through the same
// repositories without opening a transaction.
package services
