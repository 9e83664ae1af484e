// Package pkgroutine runs background work with a concurrency cap.
//
// Upload side effects such as event publishing are scheduled through a
// Manager so shutdown can wait for them.
package pkgroutine
