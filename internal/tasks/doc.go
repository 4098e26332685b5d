// package tasks implements long-running analytics operations against the video platform.
//
// The core abstraction is StatsEngine, which orchestrates bulk exports of
// per-video statistics. Operations emit progress updates via channels for
// non-blocking status reporting to CLI/UI layers.
package tasks
