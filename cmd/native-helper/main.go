//go:build android && cgo

// Command native-helper is built with -buildmode=c-shared into
// libnative-helper.so, and loaded by com.edgeai.chatappv2.NativeHelper.
package main

/*
#include <jni.h>
#include <stdlib.h>

static const char* get_string_utf_chars(JNIEnv *env, jstring s) {
	return (*env)->GetStringUTFChars(env, s, NULL);
}

static void release_string_utf_chars(JNIEnv *env, jstring s, const char *chars) {
	(*env)->ReleaseStringUTFChars(env, s, chars);
}

static jstring new_string_utf(JNIEnv *env, const char *s) {
	return (*env)->NewStringUTF(env, s);
}
*/
import "C"

import (
	"database/sql"
	"log/slog"
	"sync"
	"unsafe"

	"go.hackfix.me/envbridge/app/config"
	"go.hackfix.me/envbridge/bridge"
	"go.hackfix.me/envbridge/env"
	"go.hackfix.me/envbridge/logcat"
)

func main() {}

var (
	initOnce  sync.Once
	envBridge *bridge.Bridge
	logger    *slog.Logger
)

// load initializes the bridge on first use. Initialization can't fail, since
// both the environment and the logger are always available.
func load() *bridge.Bridge {
	initOnce.Do(func() {
		logger = slog.New(logcat.NewHandler(config.DefaultLogTag, nil))
		slog.SetDefault(logger)

		if n := env.SyncFromLibc(); n > 0 {
			logger.Debug("copied environment from libc", "count", n)
		}

		var err error
		envBridge, err = bridge.New(env.Native{}, bridge.WithLogger(logger))
		if err != nil {
			panic(err)
		}
	})

	return envBridge
}

//export JNI_OnLoad
func JNI_OnLoad(vm *C.JavaVM, reserved unsafe.Pointer) C.jint {
	load()
	return C.JNI_VERSION_1_6
}

//export Java_com_edgeai_chatappv2_NativeHelper_setEnvNative
func Java_com_edgeai_chatappv2_NativeHelper_setEnvNative(
	jenv *C.JNIEnv, clazz C.jclass, name, value C.jstring,
) C.jboolean {
	b := load()

	nameText, ok := goText(b, jenv, name)
	if !ok {
		return jbool(false)
	}
	valueText, ok := goText(b, jenv, value)
	if !ok {
		return jbool(false)
	}

	return jbool(b.SetVariable(nameText, valueText))
}

//export Java_com_edgeai_chatappv2_NativeHelper_getEnvNative
func Java_com_edgeai_chatappv2_NativeHelper_getEnvNative(
	jenv *C.JNIEnv, clazz C.jclass, name C.jstring,
) C.jstring {
	b := load()

	nameText, ok := goText(b, jenv, name)
	if !ok {
		return nil
	}

	val := b.GetVariable(nameText)
	if !val.Valid {
		return nil
	}

	cval := C.CString(val.V)
	defer C.free(unsafe.Pointer(cval))

	return C.new_string_utf(jenv, cval)
}

//export Java_com_edgeai_chatappv2_NativeHelper_verifyAdspLibraryPathNative
func Java_com_edgeai_chatappv2_NativeHelper_verifyAdspLibraryPathNative(
	jenv *C.JNIEnv, clazz C.jclass,
) C.jboolean {
	return jbool(load().VerifyKnownPathVariable())
}

//export Java_com_edgeai_chatappv2_NativeHelper_printDiagnosticInfoNative
func Java_com_edgeai_chatappv2_NativeHelper_printDiagnosticInfoNative(
	jenv *C.JNIEnv, clazz C.jclass,
) {
	load().PrintDiagnostics()
}

// goText copies a Java string into Go. The characters are released before
// returning.
func goText(b *bridge.Bridge, jenv *C.JNIEnv, s C.jstring) (sql.Null[string], bool) {
	return b.DecodeText(bridge.ForeignText{
		Null: s == nil,
		Chars: func() (string, bool) {
			chars := C.get_string_utf_chars(jenv, s)
			if chars == nil {
				return "", false
			}
			defer C.release_string_utf_chars(jenv, s, chars)
			return C.GoString(chars), true
		},
	})
}

func jbool(b bool) C.jboolean {
	if b {
		return C.JNI_TRUE
	}
	return C.JNI_FALSE
}
