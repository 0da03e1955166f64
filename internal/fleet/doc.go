// Package fleet holds the static aircraft profiles and the registry used to
// look them up by registration.
//
// Profile constants come from each airframe's weighing report and the Cessna
// 172S POH; they are package-level data, immutable after initialisation, and
// lookups hand out detached copies.
package fleet
