// Package lib has statistics primitives used by goring. Shall not
// import packages other than golang's standard packages.
package lib
