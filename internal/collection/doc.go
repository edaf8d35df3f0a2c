// Package collection holds the editable-collection machinery every page of
// the portal is built from: an ordered in-memory Store, a Filter over
// equality and substring dimensions, a single-field Sorter and an
// EditSession that keeps a detached working copy of one record.
//
// Nothing here returns errors. Update and Remove on an unknown id leave the
// store as it was, and the session commits whatever the working copy holds.
package collection
