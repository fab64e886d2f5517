package core

// Entity is an opaque body handle; a row in every store the body participates in
type Entity uint64

// NoEntity is never issued by a World
const NoEntity Entity = 0
