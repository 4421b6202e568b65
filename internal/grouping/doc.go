// Package grouping merges issues that sit on roughly the same horizontal line.
//
// Clustering is greedy and order dependent: issues are visited top to bottom
// and each joins the first open group whose representative y is within the
// threshold. A group's representative y is its first member's y and never
// moves, so two issues that are close to each other can still land in
// different groups when an earlier member anchored the group elsewhere.
package grouping
