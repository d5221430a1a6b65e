// Package pipeline provides a pipeline for processing data.
//
// A pipeline is a graph of stages connected by channels. Root steps produce the data, steps transform it one
// element at a time (optionally with several goroutines), splitters broadcast it to several branches, mergers
// join branches back together and sinks consume it. Every stage runs in its own goroutine once Run is called.
//
// The pipeline stops on the first error returned by any stage: the shared context is cancelled, the remaining
// stages drain and Run returns that error.
//
// Pipeline options (see the measure and drawer packages) are notified when a stage is prepared and every time a
// stage emits an element, which lets them record timings or build a picture of the pipeline.
package pipeline
