// Package bridge implements the environment bridge exposed to managed code
// over JNI: setting and getting process environment variables, verifying
// that ADSP_LIBRARY_PATH is visible, and logging a short diagnostic report.
//
// Every exported operation is a live pass-through to the injected
// environment. Failures are never fatal: the FFI-facing methods report them
// with a false or absent result, and log the details.
package bridge
