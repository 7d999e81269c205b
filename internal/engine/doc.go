// Package engine holds the derived-stat and list-browsing rules shared by
// every catalog view: die sizes for skill levels, range phrases, mitigation
// pairs, currency display and the record filter/sort pipeline.
//
// Everything here is pure. Functions never mutate their inputs and never
// fail on out-of-domain numbers; they clamp to the nearest valid default.
package engine
