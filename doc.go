// Package steamworks provides a safe, idiomatic interface to the Steamworks
// SDK. It wraps the raw flat-API bindings in the sys module with typed ids,
// typed errors, and a callback dispatcher built on the SDK's manual dispatch
// pump.
//
// The SDK holds a single global instance per process, so at most one Client
// may be live at a time; Init fails with ErrAlreadyInitialized until the
// previous client is shut down. Callbacks and async call results are
// delivered by RunCallbacks, which games call once per frame:
//
//	client, err := steamworks.Init(480)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Shutdown()
//
//	reg := steamworks.RegisterCallback(client, func(cb steamworks.PersonaStateChange) {
//		fmt.Println("persona changed:", cb.SteamID)
//	})
//	defer reg.Unregister()
//
//	for running {
//		client.RunCallbacks()
//		time.Sleep(time.Second / 60)
//	}
package steamworks
