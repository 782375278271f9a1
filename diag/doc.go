// Package diag computes conflict sets for consistency-based diagnosis.
//
// A diagnosis problem pairs a system description, quantified over a finite
// component domain, with ground observations of the system's actual
// behavior. Every component c carries an abnormality atom ab(c); axioms
// describe a component's expected behavior only while its normalcy literal
// not(ab(c)) holds, so an observation can only contradict the description
// through the components assumed normal.
//
// Diagnose grounds the description over the domain, assumes every component
// outside the hypothesis set normal, and asks a prover to refute the
// assembled theory. When the refutation succeeds, its certificate is mined:
// each unsatisfiable core names the normalcy assumptions it rests on, and
// those components form one conflict set. The components of a conflict set
// cannot all be healthy at once, which is exactly the information a
// candidate generator needs to propose repairs.
//
// Outcomes travel as data. A consistent theory, a conflict and an
// in-time-unanswerable check are the three result statuses; errors are
// reserved for malformed problems, such as duplicate components or axioms
// that cannot be grounded.
package diag
