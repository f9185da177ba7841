// Package catalogue holds the fixed equipment data the store is seeded from.
package catalogue

import "github.com/mcoot/armoury/internal/model"

// Armours is the armour catalogue in seed order
var Armours = []model.Armour{
	{
		Name:        "padded",
		Description: "Padded armour consists of quilted layers of cloth and batting.",
		Category:    model.ArmourLight,
		Cost:        "5 gp",
		ArmourClass: "11 + Dex modifier",
		Stealth:     model.StealthDisadvantage,
		Weight:      "8 lb.",
	},
	{
		Name:        "leather",
		Description: "The breastplate and shoulder protectors of this armour are made of leather that has been stiffened by being boiled in oil. The rest of the armour is made of softer and more flexible materials.",
		Category:    model.ArmourLight,
		Cost:        "10 gp",
		ArmourClass: "11 + Dex modifier",
		Weight:      "10 lb.",
	},
	{
		Name:        "studded leather",
		Description: "Made from tough but flexible leather, studded leather is reinforced with close-set rivets or spikes.",
		Category:    model.ArmourLight,
		Cost:        "45 gp",
		ArmourClass: "12 + Dex modifier",
		Weight:      "13 lb.",
	},
	{
		Name:        "hide",
		Description: "This crude armour consists of thick furs and pelts. It is commonly worn by barbarian tribes, evil humanoids, and other folk who lack access to the tools and materials needed to create better armour.",
		Category:    model.ArmourMedium,
		Cost:        "10 gp",
		ArmourClass: "12 + Dex modifier (max 2)",
		Weight:      "12 lb.",
	},
	{
		Name:        "chain shirt",
		Description: "Made of interlocking metal rings, a chain shirt is worn between layers of clothing or leather. This armour offers modest protection to the wearer's upper body and allows the sound of the rings rubbing against one another to be muffled by outer layers.",
		Category:    model.ArmourMedium,
		Cost:        "50 gp",
		ArmourClass: "13 + Dex modifier (max 2)",
		Weight:      "20 lb.",
	},
	{
		Name:        "scale mail",
		Description: "This armour consists of a coat and leggings (and perhaps a separate skirt) of leather covered with overlapping pieces of metal, much like the scales of a fish. The suit includes gauntlets.",
		Category:    model.ArmourMedium,
		Cost:        "50 gp",
		ArmourClass: "14 + Dex modifier (max 2)",
		Stealth:     model.StealthDisadvantage,
		Weight:      "45 lb.",
	},
	{
		Name:        "breastplate",
		Description: "This armour consists of a fitted metal chest piece worn with supple leather. Although it leaves the legs and arms relatively unprotected, this armour provides good protection for the wearer's vital organs while leaving the wearer relatively unencumbered.",
		Category:    model.ArmourMedium,
		Cost:        "400 gp",
		ArmourClass: "14 + Dex modifier (max 2)",
		Weight:      "20 lb.",
	},
	{
		Name:        "half plate",
		Description: "Half plate consists of shaped metal plates that cover most of the wearer's body. It does not include leg protection beyond simple greaves that are attached with leather straps.",
		Category:    model.ArmourMedium,
		Cost:        "750 gp",
		ArmourClass: "15 + Dex modifier (max 2)",
		Stealth:     model.StealthDisadvantage,
		Weight:      "40 lb.",
	},
	{
		Name:        "ring mail",
		Description: "This armour is leather armour with heavy rings sewn into it. The rings help reinforce the armour against blows from swords and axes. Ring mail is inferior to chain mail, and it's usually worn only by those who can't afford better armour.",
		Category:    model.ArmourHeavy,
		Cost:        "30 gp",
		ArmourClass: "14",
		Stealth:     model.StealthDisadvantage,
		Weight:      "40 lb.",
	},
	{
		Name:        "chain mail",
		Description: "Made of interlocking metal rings, chain mail includes a layer of quilted fabric worn underneath the mail to prevent chafing and to cushion the impact of blows. The suit includes gauntlets.",
		Category:    model.ArmourHeavy,
		Cost:        "75 gp",
		ArmourClass: "16",
		Strength:    "Str 13",
		Stealth:     model.StealthDisadvantage,
		Weight:      "55 lb.",
	},
	{
		Name:        "splint",
		Description: "This armour is made of narrow vertical strips of metal riveted to a backing of leather that is worn over cloth padding. Flexible chain mail protects the joints.",
		Category:    model.ArmourHeavy,
		Cost:        "200 gp",
		ArmourClass: "17",
		Strength:    "Str 15",
		Stealth:     model.StealthDisadvantage,
		Weight:      "60 lb.",
	},
	{
		Name:        "plate",
		Description: "Plate consists of shaped, interlocking metal plates to cover the entire body. A suit of plate includes gauntlets, heavy leather boots, a visored helmet, and thick layers of padding underneath the armour. Buckles and straps distribute the weight over the body.",
		Category:    model.ArmourHeavy,
		Cost:        "1500 gp",
		ArmourClass: "18",
		Strength:    "Str 15",
		Stealth:     model.StealthDisadvantage,
		Weight:      "65 lb.",
	},
	{
		Name:        "shield",
		Description: "A shield is made from wood or metal and is carried in one hand. Wielding a shield increases your Armour Class by 2. You can benefit from only one shield at a time.",
		Category:    model.ArmourShield,
		Cost:        "10 gp",
		ArmourClass: "+2",
		Weight:      "6 lb.",
	},
}
