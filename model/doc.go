// Package model contains the persisted representation of a lab session.
//
// A Record captures everything needed to bring a session back: the file
// system snapshot, the command history and the shell environment. Records are
// stored through the dao.Service abstraction as JSON or YAML documents.
package model
