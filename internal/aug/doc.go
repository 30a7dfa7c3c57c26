// Package aug is the boundary between the predicate chooser and the
// external tree-structured configuration parser it reads paths and values
// from. Tree names exactly the operations §6 of the specification allows
// the core to call; nothing else crosses this boundary.
package aug
