// File: codes.go
// Role: graphlet class ordering and bitmask->class lookup tables.
package graphlet

// ClassNames3 fixes the output order of Vector3.
var ClassNames3 = []string{"wedge", "triangle"}

// ClassNames4 fixes the output order of Vector4 (3-node classes first,
// matching the original count_func's concatenation order).
var ClassNames4 = []string{
	"wedge", "triangle",
	"4star", "4path", "tailed_tri", "4cycle", "diamond", "4clique",
}

// ClassNames5 fixes the output order of Vector5.
var ClassNames5 = []string{
	"wedge", "triangle",
	"4star", "4path", "tailed_tri", "4cycle", "diamond", "4clique",
	"5star", "prong", "5path", "fork_tailed_tri", "long_tailed_tri",
	"double_tailed_tri", "tailed_cycle", "5cycle", "hourglass", "cobra",
	"stingray", "hatted_cycle", "three_wedge", "three_tri",
	"tailed_clique", "triangle_strip", "diamond_wedge", "wheel",
	"hatted_clique", "bipyramid", "5clique",
}

func invert(codes map[string][]int) map[int]string {
	out := make(map[int]string)
	for name, cs := range codes {
		for _, c := range cs {
			out[c] = name
		}
	}

	return out
}

// CodeToClass3 maps a 3-node bitmask code to its graphlet class name.
var CodeToClass3 = invert(map[string][]int{
	"wedge":    {3, 5, 6},
	"triangle": {7},
})

// CodeToClass4 maps a bitmask code (3-node or 4-node) to its class name.
var CodeToClass4 = invert(map[string][]int{
	"wedge":      {3, 5, 6},
	"triangle":   {7},
	"4star":      {56, 11, 21, 38},
	"4path":      {35, 37, 41, 44, 13, 14, 49, 50, 19, 22, 26, 28},
	"tailed_tri": {39, 43, 46, 15, 53, 54, 23, 57, 58, 27, 60, 29},
	"4cycle":     {51, 45, 30},
	"diamond":    {47, 55, 59, 61, 62, 31},
	"4clique":    {63},
})

// CodeToClass5 maps a bitmask code (3-, 4- or 5-node) to its class name.
var CodeToClass5 = invert(map[string][]int{
	"wedge":      {3, 5, 6},
	"triangle":   {7},
	"4star":      {56, 11, 21, 38},
	"4path":      {35, 37, 41, 44, 13, 14, 49, 50, 19, 22, 26, 28},
	"tailed_tri": {39, 43, 46, 15, 53, 54, 23, 57, 58, 27, 60, 29},
	"4cycle":     {51, 45, 30},
	"diamond":    {47, 55, 59, 61, 62, 31},
	"4clique":    {63},
	"5star":      {960, 294, 75, 149, 568},
	"prong": {
		897, 898, 645, 774, 904, 267, 523, 139, 141, 270, 401, 147, 533, 277,
		278, 792, 150, 538, 540, 156, 418, 291, 165, 550, 166, 680, 553, 293,
		556, 300, 177, 306, 562, 561, 312, 184, 833, 706, 579, 708, 836, 456,
		329, 202, 77, 78, 464, 848, 83, 212, 85, 90, 480, 736, 99, 356, 102,
		105, 624, 120,
	},
	"5path": {
		771, 643, 773, 646, 777, 393, 650, 652, 780, 269, 142, 394, 785, 402,
		786, 531, 526, 534, 275, 408, 154, 282, 284, 417, 673, 674, 547, 549,
		163, 424, 297, 169, 172, 305, 178, 581, 582, 204, 332, 337, 210, 594,
		340, 596, 86, 525, 344, 92, 353, 609, 226, 228, 612, 101, 232, 108,
		240, 368, 113, 114,
	},
	"fork_tailed_tri": {
		405, 661, 151, 157, 422, 295, 806, 302, 181, 310, 696, 569, 570, 824,
		572, 961, 962, 964, 968, 331, 203, 587, 79, 976, 213, 91, 992, 358,
		107, 632,
	},
	"long_tailed_tri": {
		647, 775, 908, 397, 398, 527, 914, 659, 662, 535, 409, 793, 283, 666,
		285, 412, 929, 803, 805, 551, 809, 426, 171, 682, 428, 174, 817, 690,
		313, 186, 583, 716, 589, 590, 844, 460, 466, 339, 850, 722, 342, 345,
		346, 604, 481, 737, 227, 865, 229, 233, 234, 620, 241, 370, 244, 117,
		118, 372, 628, 124,
	},
	"double_tailed_tri": {
		901, 902, 143, 271, 913, 406, 279, 920, 539, 155, 541, 668, 930, 421,
		167, 936, 299, 555, 812, 558, 689, 818, 309, 565, 182, 566, 185, 314,
		188, 316, 707, 835, 709, 838, 457, 841, 458, 714, 205, 334, 465, 211,
		468, 724, 87, 856, 602, 93, 482, 355, 484, 868, 103, 744, 617, 110,
		752, 880, 121, 122,
	},
	"tailed_cycle": {
		899, 905, 906, 395, 651, 653, 782, 779, 403, 789, 790, 794, 796, 542,
		286, 158, 419, 677, 678, 681, 684, 173, 557, 301, 433, 434, 179, 307,
		563, 440, 837, 710, 333, 206, 849, 595, 852, 597, 341, 214, 472, 218,
		220, 94, 738, 611, 376, 357, 230, 614, 488, 361, 740, 364, 109, 496,
		625, 626, 115, 248,
	},
	"5cycle":   {675, 613, 425, 236, 781, 654, 369, 242, 787, 598, 410, 348},
	"hourglass": {993, 807, 235, 972, 430, 591, 978, 245, 374, 663, 825, 698, 347, 636, 413},
	"cobra": {
		903, 399, 918, 921, 667, 924, 543, 287, 933, 938, 811, 940, 559, 175,
		945, 946, 821, 694, 567, 315, 187, 317, 190, 444, 839, 711, 717, 846,
		462, 461, 467, 723, 470, 343, 857, 473, 858, 732, 605, 730, 483, 867,
		485, 231, 745, 746, 490, 876, 873, 622, 753, 882, 884, 756, 500, 119,
		249, 378, 125, 126,
	},
	"stingray": {
		917, 407, 437, 438, 669, 159, 934, 423, 814, 303, 693, 822, 183, 311,
		697, 826, 571, 828, 189, 318, 573, 574, 952, 700, 963, 965, 966, 969,
		970, 459, 715, 843, 335, 207, 977, 980, 469, 725, 215, 984, 603, 219,
		221, 95, 994, 996, 486, 870, 1000, 359, 619, 363, 366, 111, 1008, 888,
		760, 633, 634, 123,
	},
	"hatted_cycle": {
		909, 910, 655, 783, 915, 791, 922, 411, 795, 797, 414, 670, 931, 679,
		937, 427, 683, 429, 813, 686, 691, 819, 441, 442, 497, 498, 845, 718,
		851, 726, 599, 854, 474, 476, 349, 606, 350, 860, 739, 869, 741, 615,
		489, 492, 237, 238, 621, 748, 881, 754, 243, 371, 373, 246, 629, 380,
		377, 250, 630, 252,
	},
	"three_wedge": {742, 907, 365, 685, 798, 627, 435, 853, 504, 222},
	"three_tri":   {998, 971, 367, 981, 439, 1016, 635, 701, 830, 223},
	"tailed_clique": {
		949, 950, 956, 319, 575, 191, 967, 463, 471, 985, 731, 733, 487, 1002,
		875, 878, 1012, 761, 890, 127,
	},
	"triangle_strip": {
		637, 892, 638, 919, 925, 671, 415, 935, 942, 815, 431, 695, 823, 953,
		954, 827, 699, 829, 446, 702, 445, 973, 974, 847, 719, 979, 982, 727,
		986, 247, 988, 477, 859, 375, 607, 351, 475, 995, 997, 871, 1001, 491,
		1004, 747, 494, 623, 239, 1009, 1010, 251, 501, 757, 502, 886, 889,
		762, 379, 764, 253, 382,
	},
	"diamond_wedge": {
		911, 923, 926, 799, 939, 941, 687, 947, 443, 855, 861, 862, 478, 734,
		743, 749, 750, 493, 877, 499, 755, 883, 758, 631, 885, 505, 506, 508,
		381, 254,
	},
	"wheel": {509, 510, 759, 1005, 766, 943, 751, 1011, 507, 863, 887, 955, 893, 990, 927},
	"hatted_clique": {
		383, 1020, 639, 951, 957, 958, 447, 703, 831, 975, 983, 987, 989, 735,
		479, 999, 1003, 1006, 495, 879, 1013, 1014, 503, 1017, 1018, 891, 763,
		765, 894, 255,
	},
	"bipyramid": {511, 1007, 767, 1015, 895, 959, 1019, 1021, 1022, 991},
	"5clique":   {1023},
})
