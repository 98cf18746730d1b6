// Package site assembles the showcase page and its companion artifacts
// through a sequence of build steps.
//
// A build runs as a pipeline: validate the paper, render the stylesheet
// and reveal script, render the page, export alternate formats, and
// finally materialize everything to the output directory. Each stage is
// implemented as a Step that receives the accumulated Build and can add
// artifacts to it.
//
// Design decision: We use a step pipeline instead of direct function
// calls because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context for watch-triggered rebuilds
// 4. The preview server can run the same pipeline without the write step
//    and serve the in-memory artifacts directly
package site
