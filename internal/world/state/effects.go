package state

// SoundID names a replicated sound cue.
type SoundID int

const (
	SoundNone SoundID = iota - 1
	SoundGunFire
	SoundShotgunFire
	SoundGrenadeFire
	SoundHammerHit
	SoundGrenadeExplode
	SoundHookLoop
	SoundPickupArmor
	SoundRifleFire
	SoundCTFGrabPL
	SoundHit
)

// Emoticon is a speech-bubble icon shown above a player.
type Emoticon int

const (
	EmoticonOops Emoticon = iota
	EmoticonExclamation
	EmoticonHearts
	EmoticonDrop
	EmoticonDotDot
	EmoticonMusic
	EmoticonSorry
	EmoticonGhost
	EmoticonSushi
	EmoticonSplatTee
	EmoticonDeviltee
	EmoticonZomg
	EmoticonZzz
	EmoticonWtf
	EmoticonEyes
	EmoticonQuestion
)

// Emote is the facial expression of a player's character.
type Emote int

const (
	EmoteNormal Emote = iota
	EmotePain
	EmoteHappy
	EmoteSurprise
	EmoteAngry
	EmoteBlink
)
