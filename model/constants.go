package model

// WGS84EPSGCode is the EPSG code of the coordinate reference system all
// GIMI georeference metadata is expressed in
const WGS84EPSGCode = 4326

// WGS84WKT is the well-known-text form of EPSG:4326, as raster tooling
// expects to find it in a virtual raster's SRS element
const WGS84WKT = `GEOGCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563,AUTHORITY["EPSG","7030"]],AUTHORITY["EPSG","6326"]],PRIMEM["Greenwich",0,AUTHORITY["EPSG","8901"]],UNIT["degree",0.0174532925199433,AUTHORITY["EPSG","9122"]],AUTHORITY["EPSG","4326"]]`
