// Package ops holds the operation descriptors for each remote
// service: which service path an operation lives under, the wire order
// of its parameters, its benign status codes, and how its response
// parses. The executor consumes these descriptors; nothing here talks
// to the network.
package ops
