// Package generator runs the settings generation pipeline.
//
// A Pipeline moves through a fixed sequence of states:
//
//	Start → SourceResolved → ParametersParsed → ContextBuilt → Rendered → Written → Done
//
// A run with no parameter file ends in Aborted, which is not an error:
// nothing is written and Run returns a nil error. Any other stage failure
// ends in Failed and the stage's error is returned unchanged.
package generator
