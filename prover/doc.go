// Package prover proves formulas by refutation. A goal is proved by
// clausifying its negation together with a set of assumption formulas and
// checking the result for satisfiability with the gophersat solver. When the
// clause set is unsatisfiable the prover reports a certificate: the ground
// sequents of one or more unsatisfiable cores, extracted with the gophersat
// explain package. Assumptions cited by a core are relaxed and the check is
// repeated, so contradictions that rest on disjoint assumptions each
// contribute their own core to the certificate.
//
// Outcomes that carry no proof are not errors. A satisfiable negation and an
// expired context both come back as ordinary verdicts; errors are reserved
// for input the prover cannot handle at all.
package prover
