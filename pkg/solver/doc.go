// Package solver registers puzzle days and solves them through a pipeline.
//
// A Day couples a record parser with one evaluator per part. Solving a day streams the input lines through the
// parser once, broadcasts every record to all the requested parts and adds up the values each part gives to it.
package solver
