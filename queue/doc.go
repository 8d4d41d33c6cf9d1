/*
Package queue defines the tasks performed to grow a tree as well as the
explicit LIFO stack the builder keeps them in, so that growing a tree never
recurses.
*/
package queue
