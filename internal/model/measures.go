package model

// Cost is a price such as "10 gp". Units are cp, sp, ep, gp and pp.
type Cost string

// Weight is a carried weight such as "2 lb." or "1/4 lb.".
type Weight string

// Die is dice notation such as "1d8" or "d20".
type Die string

// WeaponDamage is either a Die or a flat amount (the blowgun deals "1").
type WeaponDamage string
