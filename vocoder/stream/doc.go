// Package stream runs the vocoder sample by sample.
//
// A [Session] feeds every input sample to a framer. Whenever a frame
// completes it runs the silence gate, the fo tracker, the aperiodicity and
// envelope estimators and finally updates the synthesizer. Every input
// sample, frame or not, yields exactly one output sample.
package stream
