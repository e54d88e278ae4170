// Package autosync pushes local saves automatically.
//
// The Watcher listens for fsnotify events on the save directory. A write,
// create or rename of a tracked file schedules a push once the file has been
// quiet for the debounce delay; an optional interval pushes regardless.
// Games write their saves in bursts, so one push follows each burst.
package autosync
