package host

// #include <stdint.h>
//
// typedef struct {
//     float input_rms_db;
//     float gain_db;
//     float output_rms_db;
//     float noise_floor_db;
//     int   active;
// } automix_channel_metering_t;
//
// typedef struct {
//     float nom_count;
//     float nom_attenuation_db;
// } automix_global_metering_t;
import "C"
import "unsafe"

// Exported functions give the engine boundary a concrete C ABI: an
// opaque uintptr handle, plain C scalars for parameters, and flat
// structs for metering output. No external header is required to build
// this package; the C snippet above only declares the struct layouts
// the exported functions read and write.

//export AutomixCreate
func AutomixCreate(numChannels C.uint32_t, sampleRate C.float, maxBlockSize C.uint32_t) C.uintptr_t {
	h := Create(uint32(numChannels), float32(sampleRate), uint32(maxBlockSize))
	return C.uintptr_t(h)
}

//export AutomixDestroy
func AutomixDestroy(handle C.uintptr_t) {
	Destroy(Handle(handle))
}

//export AutomixVersion
func AutomixVersion() *C.char {
	return C.CString(Version)
}

//export AutomixProcess
func AutomixProcess(handle C.uintptr_t, channelPtrs **C.float, numChannels C.uint32_t, numSamples C.uint32_t) {
	if channelPtrs == nil {
		return
	}
	n := int(numChannels)
	ns := int(numSamples)
	if n <= 0 || ns <= 0 {
		return
	}

	ptrSlice := unsafe.Slice(channelPtrs, n)
	buffers := make([][]float32, n)
	for i := 0; i < n; i++ {
		if ptrSlice[i] == nil {
			return
		}
		buffers[i] = unsafe.Slice((*float32)(unsafe.Pointer(ptrSlice[i])), ns)
	}
	Process(Handle(handle), buffers)
}

//export AutomixSetChannelWeight
func AutomixSetChannelWeight(handle C.uintptr_t, channel C.int32_t, weight C.float) {
	SetChannelWeight(Handle(handle), int(channel), float32(weight))
}

//export AutomixSetChannelMute
func AutomixSetChannelMute(handle C.uintptr_t, channel C.int32_t, muted C.int) {
	SetChannelMute(Handle(handle), int(channel), muted != 0)
}

//export AutomixSetChannelSolo
func AutomixSetChannelSolo(handle C.uintptr_t, channel C.int32_t, soloed C.int) {
	SetChannelSolo(Handle(handle), int(channel), soloed != 0)
}

//export AutomixSetChannelBypass
func AutomixSetChannelBypass(handle C.uintptr_t, channel C.int32_t, bypassed C.int) {
	SetChannelBypass(Handle(handle), int(channel), bypassed != 0)
}

//export AutomixSetGlobalBypass
func AutomixSetGlobalBypass(handle C.uintptr_t, bypass C.int) {
	SetGlobalBypass(Handle(handle), bypass != 0)
}

//export AutomixSetAttackMs
func AutomixSetAttackMs(handle C.uintptr_t, ms C.float) {
	SetAttackMs(Handle(handle), float32(ms))
}

//export AutomixSetReleaseMs
func AutomixSetReleaseMs(handle C.uintptr_t, ms C.float) {
	SetReleaseMs(Handle(handle), float32(ms))
}

//export AutomixSetHoldTimeMs
func AutomixSetHoldTimeMs(handle C.uintptr_t, ms C.float) {
	SetHoldTimeMs(Handle(handle), float32(ms))
}

//export AutomixSetNomAttenEnabled
func AutomixSetNomAttenEnabled(handle C.uintptr_t, enabled C.int) {
	SetNomAttenEnabled(Handle(handle), enabled != 0)
}

//export AutomixGetChannelMetering
func AutomixGetChannelMetering(handle C.uintptr_t, channel C.int32_t, out *C.automix_channel_metering_t) C.int {
	if out == nil {
		return 0
	}
	var m ChannelMetering
	if !GetChannelMetering(Handle(handle), int(channel), &m) {
		return 0
	}
	out.input_rms_db = C.float(m.InputRMSDb)
	out.gain_db = C.float(m.GainDb)
	out.output_rms_db = C.float(m.OutputRMSDb)
	out.noise_floor_db = C.float(m.NoiseFloorDb)
	if m.Active {
		out.active = 1
	} else {
		out.active = 0
	}
	return 1
}

//export AutomixGetGlobalMetering
func AutomixGetGlobalMetering(handle C.uintptr_t, out *C.automix_global_metering_t) C.int {
	if out == nil {
		return 0
	}
	var gm GlobalMetering
	if !GetGlobalMetering(Handle(handle), &gm) {
		return 0
	}
	out.nom_count = C.float(gm.NomCount)
	out.nom_attenuation_db = C.float(gm.NomAttenuationDb)
	return 1
}

//export AutomixGetAllChannelMetering
func AutomixGetAllChannelMetering(handle C.uintptr_t, outArray *C.automix_channel_metering_t, maxChannels C.uint32_t) C.uint32_t {
	if outArray == nil || maxChannels == 0 {
		return 0
	}
	n := int(maxChannels)
	dst := make([]ChannelMetering, n)
	written := GetAllChannelMetering(Handle(handle), dst)

	cSlice := unsafe.Slice(outArray, n)
	for i := 0; i < written; i++ {
		cSlice[i].input_rms_db = C.float(dst[i].InputRMSDb)
		cSlice[i].gain_db = C.float(dst[i].GainDb)
		cSlice[i].output_rms_db = C.float(dst[i].OutputRMSDb)
		cSlice[i].noise_floor_db = C.float(dst[i].NoiseFloorDb)
		if dst[i].Active {
			cSlice[i].active = 1
		} else {
			cSlice[i].active = 0
		}
	}
	return C.uint32_t(written)
}
